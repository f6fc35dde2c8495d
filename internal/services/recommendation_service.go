package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/search"
	"tripplanner/internal/utils"
)

type RecommendationService struct {
	Wishlist  WishlistStore
	Now       func() time.Time
	RequestID string
}

type RecommendationSearch struct {
	Query string
	Tag   string
	Sort  string
	Order string
	Page  int
	Limit int
}

// Search filters saved items by fuzzy query on title, city and country and by
// exact tag, then sorts by rating, title or created_at (default).
func (s RecommendationService) Search(userID int64, q RecommendationSearch) (search.Page[models.WishlistItem], error) {
	items, err := s.Wishlist.ListByUser(userID)
	if err != nil {
		return search.Page[models.WishlistItem]{}, err
	}

	query := strings.TrimSpace(q.Query)
	tag := strings.ToLower(strings.TrimSpace(q.Tag))
	matched := make([]models.WishlistItem, 0, len(items))
	for _, it := range items {
		if query != "" && max(search.FuzzyScore(query, it.Title), search.FuzzyScore(query, it.City), search.FuzzyScore(query, it.Country)) == 0 {
			continue
		}
		if tag != "" && !slices.ContainsFunc(it.Tags, func(t string) bool { return strings.ToLower(t) == tag }) {
			continue
		}
		matched = append(matched, it)
	}

	compare := wishlistComparator(q.Sort)
	desc := domain.Sort{Direction: q.Order}.Desc()
	slices.SortStableFunc(matched, func(a, b models.WishlistItem) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return search.Paginate(matched, q.Page, q.Limit), nil
}

func wishlistComparator(key string) func(a, b models.WishlistItem) int {
	switch key {
	case "rating":
		return func(a, b models.WishlistItem) int { return cmp.Compare(a.Rating, b.Rating) }
	case "title":
		return func(a, b models.WishlistItem) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return func(a, b models.WishlistItem) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

type RecommendationInput struct {
	Title    string   `json:"title"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

// Save adds a place to the user's wishlist. Tags are trimmed, lower-cased
// and deduplicated.
func (s RecommendationService) Save(userID int64, in RecommendationInput) (models.WishlistItem, error) {
	title := utils.NormalizeSpace(in.Title)
	if title == "" {
		return models.WishlistItem{}, domain.ValidationError{Field: "title", Msg: "is required"}
	}
	tags := []string{}
	for _, t := range in.Tags {
		t = strings.ToLower(utils.NormalizeSpace(t))
		if t != "" && !strings.Contains(t, ",") && !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}

	item := models.WishlistItem{
		UserID:    userID,
		Title:     title,
		City:      utils.NormalizeSpace(in.City),
		Country:   utils.NormalizeSpace(in.Country),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		Tags:      tags,
		CreatedAt: nowOr(s.Now),
	}
	id, err := s.Wishlist.Create(item)
	if err != nil {
		return models.WishlistItem{}, err
	}
	item.ID = id
	utils.LogEvent(s.RequestID, "recommendation", "create", fmt.Sprintf("item_id=%d", id))
	return item, nil
}

// Rate stores a rating between 1 and 5 on one of the user's items.
func (s RecommendationService) Rate(userID, id int64, rating float64) error {
	if rating < 1 || rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	if err := s.Wishlist.Rate(userID, id, rating, nowOr(s.Now).UTC()); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "recommendation", "rate", fmt.Sprintf("item_id=%d rating=%.1f", id, rating))
	return nil
}
