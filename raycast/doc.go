// Package raycast is the shooting-gallery demo: a grid map drawn by per-column ray marching,
// billboard targets and projectiles composited through a depth buffer, and a HUD
//
// Map space: X indexes map rows and Y indexes map columns, a rotation r faces (sin r, cos r)
package raycast
