package dto

import "siris-blog/models"

// PostDTO is the JSON shape of a post, with its slug resolved.
// swagger:model PostDTO
type PostDTO struct {
	Slug     string `json:"slug" example:"all-about-llamas"`
	Title    string `json:"title" example:"All About Llamas"`
	Subtitle string `json:"subtitle" example:"One of the South American members of Camelidae"`
	Author   string `json:"author" example:"Mojo Jojo"`
	Date     string `json:"date" example:"2023-09-24"`
	Image    string `json:"image" example:"llama.jpg"`
	Body     string `json:"body"`
}

func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		Slug:     p.Slug(),
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		Date:     p.Date,
		Image:    p.Image,
		Body:     p.Body,
	}
}

func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}
