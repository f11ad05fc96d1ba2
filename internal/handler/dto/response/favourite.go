package response

type FavouriteToggleResponse struct {
	Favourite bool `json:"favourite"`
}
