package domain

// Identity is the authenticated GitHub user attached to a request.
type Identity struct {
	// ExternalID is the provider's account id, formatted as a decimal
	// string at the gateway boundary. Never compare the raw value.
	ExternalID  string `json:"externalId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// UploadedImage is the result of pushing an image to external storage.
type UploadedImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
