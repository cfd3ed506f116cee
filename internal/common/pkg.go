package common

// UnknownStr is the conventional textual form for unrecognized enum members.
const UnknownStr = "unknown"
