package configs

// Redis configures the distributed campaign lock. An empty Address keeps
// locking in-process, which is enough for a single replica.
type Redis struct {
	// Address is either a redis:// URL or host:port.
	Address   string `env:"ADDRESS"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"spendguard:campaign:"`
}
