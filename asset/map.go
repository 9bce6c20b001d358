package asset

// DefaultMap is the built-in 32x32 level
// '#' is wall, '.' is floor, '@' is floor with a target
const DefaultMap = `################################
#...............#..............#
#..@....#########...@...########
#..............##..............#
#......##......##......##......#
#......##..............##......#
#..............##..............#
###........@...####............#
##.............###.............#
#............####............###
#..............................#
#..............##..........@...#
#..............##..............#
#...@.......#####...........####
#..............................#
###..####....########....#######
####.####.......######.........#
#...............#..............#
#.......#########.......##..####
#..............##..............#
#......##..@...##.......#..@...#
#......##......##......##......#
#..............##..............#
###............####............#
##.............###.............#
#...@........####............###
#..............................#
#..............................#
#..............##..............#
#.....@.....##........@.....####
#..............##..............#
################################
`
