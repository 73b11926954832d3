package tokenstore

type TokenName string

const (
	YOUTUBE_AC TokenName = "youtube_authorization_code_token"
)
