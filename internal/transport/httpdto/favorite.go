package httpdto

type SaveFavoriteRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Email    string `json:"email"`
}

type FavoritesRequest struct {
	Email string `json:"email"`
}

type DeleteFavoriteRequest struct {
	Email    string `json:"email"`
	Question string `json:"question"`
}

type FavoriteDTO struct {
	Email    string `json:"email"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FavoritesResponse struct {
	Favorites []FavoriteDTO `json:"favorites"`
}
