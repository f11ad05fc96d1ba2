package response

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkedReadResponse struct {
	Marked int64 `json:"marked"`
}
