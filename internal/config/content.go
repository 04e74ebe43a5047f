package config

// ContentStoreConfig describes how to reach the hosted content store.
// It is built once at startup and handed to the client constructor.
type ContentStoreConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	BaseURL    string // overrides the URL derived from ProjectID when set
	Timeout    Duration
	ImageCDN   string
}

func loadContentStore() ContentStoreConfig {
	return ContentStoreConfig{
		ProjectID:  envOrDefault(envSanityProjectID, ""),
		Dataset:    envOrDefault(envSanityDataset, defaultSanityDataset),
		APIVersion: envOrDefault(envSanityAPIVersion, defaultSanityAPIVersion),
		UseCDN:     boolEnvOrDefault(envSanityUseCDN, false),
		Token:      envOrDefault(envSanityToken, ""),
		BaseURL:    envOrDefault(envSanityBaseURL, ""),
		Timeout:    durationEnvOrDefault(envSanityTimeout, defaultSanityTimeout),
		ImageCDN:   envOrDefault(envImageCDNURL, defaultImageCDNURL),
	}
}
