package config

// DefaultAPIListen is the default address the lookup API listens on.
const DefaultAPIListen = "127.0.0.1:3166"
