package clipcut

// Name is the program name used in help and version output.
const Name = "clipcut"

// Version is the clipcut release version.
const Version = "0.4.1"
