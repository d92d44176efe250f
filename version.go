package atlas

// Version is the current release of atlas.
const Version = "0.3.0"
