package model

// Category is an entry from the category list endpoint.
type Category struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumbnail   string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// CategoryNames returns the names in API order, skipping blanks.
func CategoryNames(cats []Category) []string {
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names
}
