package lcsviz

// Version is the release of the lcsviz module and CLI.
var Version = "0.3.0"
