package asset

// DefaultConfig is the TOML configuration applied before any user file or flag
const DefaultConfig = `
# === Display ===
# width/height are device pixels, 0 fits the terminal
# cell_width/cell_height are glyph pixels, 0 detects from the tty
[display]
width = 0
height = 0
cell_width = 0
cell_height = 0
borderless = false

# === Frame loop ===
# fps 0 runs uncapped
# hold_ms is how long a key counts as down after its last terminal event
[loop]
fps = 30
exit_key = "escape"
hold_ms = 150

# === Game ===
[game]
start_x = 9.0
start_y = 9.0
start_rotation = -1.5707963267948966
fov = 0.7853981633974483
render_distance = 20.0
walk_speed = 3.0
turn_speed = 1.5
projectile_speed = 8.0
jitter = 0.05
show_fps = true

# === Key bindings ===
[keys]
forward = ["w", "up"]
back = ["s", "down"]
strafe_left = ["a"]
strafe_right = ["d"]
turn_left = ["q", "left"]
turn_right = ["e", "right"]
fire = ["space", "mouse1"]
respawn = ["r"]

# === Assets ===
# Missing files fall back to built-in art
[assets]
dir = "assets"

# === Audio ===
# volume is a base-2 exponent, 0 is unchanged, -1 is half
[audio]
enabled = true
volume = -1.0
`
