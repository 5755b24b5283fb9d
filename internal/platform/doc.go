package platform

// Package platform contains OS integration glue: filesystem checks for the
// tracker inputs, picker start directory resolution, and opening a directory
// in the system file manager.
