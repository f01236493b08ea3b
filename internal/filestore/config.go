package filestore

// Provider identifies the object storage backend.
type Provider string

const ProviderMinIO Provider = "minio"

// Config holds the connection settings for the archive bucket's backend.
type Config struct {
	Provider  Provider
	Endpoint  string // host:port, e.g. "localhost:9000"
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string // empty for MinIO
}

// DefaultConfig returns a local-development MinIO config without TLS.
func DefaultConfig(endpoint, accessKey, secretKey string) *Config {
	return &Config{
		Provider:  ProviderMinIO,
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
	}
}
