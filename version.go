package interpreter

// Version is the library version, exposed to scripts as the VERSION binding.
const Version = "0.4.0"
