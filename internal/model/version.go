package model

// Version is the tool version shown in the usage banner.
const Version = "0.2.0"
