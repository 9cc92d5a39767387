package version

// Version is stamped at release time.
const Version = "0.2.0"
