// Package planconfig loads the follower and planner tuning parameters from
// YAML, layering a user file over embedded defaults the way the rest of the
// stack's configuration packages do.
package planconfig
