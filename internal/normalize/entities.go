package normalize

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"pawfam_front_end/internal/models"
)

// Valeurs de repli quand le backend renvoie des champs absents ou mal formés
const (
	PlaceholderProductImage = "https://placehold.co/300x300/9ca3af/ffffff?text=Product"
	PlaceholderPetImage     = "https://placehold.co/300x300/9ca3af/ffffff?text=Pet"
	DefaultRating           = 4.5
	DefaultCategory         = "accessories"
)

// PlaceholderCenterImage génère l'image de repli d'un centre, clé sur son nom
func PlaceholderCenterImage(name string) string {
	return "https://placehold.co/300x200/3b82f6/ffffff?text=" + url.QueryEscape(name)
}

// loose est un item de liste aux champs non garantis
type loose map[string]json.RawMessage

func looseItem(raw json.RawMessage) loose {
	m := loose{}
	_ = json.Unmarshal(raw, &m)
	return m
}

// str retourne le premier champ présent qui est une chaîne non vide
func (m loose) str(keys ...string) string {
	for _, key := range keys {
		var s string
		if raw, ok := m[key]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	return ""
}

// num retourne le premier champ présent qui est un nombre (ou une chaîne
// numérique, le backend mélange les deux)
func (m loose) num(keys ...string) float64 {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var f float64
		if json.Unmarshal(raw, &f) == nil {
			return f
		}
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if json.Unmarshal([]byte(s), &f) == nil {
				return f
			}
		}
	}
	return 0
}

// firstImage : premier élément de `images` si tableau non vide, sinon `image`
func (m loose) firstImage() string {
	var images []string
	if raw, ok := m["images"]; ok && json.Unmarshal(raw, &images) == nil && len(images) > 0 {
		return images[0]
	}
	return m.str("image")
}

// id : _id Mongo ou id, sinon identifiant local pour que l'affichage garde une clé
func (m loose) id() string {
	if s := m.str("_id", "id"); s != "" {
		return s
	}
	return uuid.NewString()
}

// shelter aplatit l'info vendeur/refuge, chaîne ou objet selon l'endpoint
func (m loose) shelter() string {
	candidates := []json.RawMessage{}
	if raw, ok := m["shelter"]; ok {
		candidates = append(candidates, raw)
	}
	if raw, ok := m["vendorName"]; ok {
		candidates = append(candidates, raw)
	}
	if raw, ok := m["vendor"]; ok {
		candidates = append(candidates, raw)
	}

	for _, raw := range candidates {
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
		obj := loose{}
		if json.Unmarshal(raw, &obj) == nil {
			if name := obj.str("name", "location", "address", "vendorName"); name != "" {
				return name
			}
		}
	}
	return "Vendor"
}

// Products coerce une réponse liste d'accessoires en forme canonique
func Products(raw json.RawMessage) []models.Product {
	items := ExtractList(raw, KnownListKeys)
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		products = append(products, Product(item))
	}
	return products
}

// Product coerce un accessoire isolé
func Product(raw json.RawMessage) models.Product {
	m := looseItem(raw)

	category := m.str("category")
	if category == "" {
		category = DefaultCategory
	}
	image := m.firstImage()
	if image == "" {
		image = PlaceholderProductImage
	}
	rating := m.num("rating")
	if rating <= 0 {
		rating = DefaultRating
	}

	name := m.str("name", "title")
	if name == "" {
		name = "Untitled Product"
	}

	return models.Product{
		ID:          m.id(),
		Name:        name,
		Category:    category,
		Price:       m.num("price", "cost"),
		Rating:      rating,
		Image:       image,
		Description: m.str("description", "details"),
	}
}

// Pets coerce une réponse liste d'animaux à adopter
func Pets(raw json.RawMessage) []models.AdoptablePet {
	items := ExtractList(raw, KnownListKeys)
	pets := make([]models.AdoptablePet, 0, len(items))
	for _, item := range items {
		pets = append(pets, Pet(item))
	}
	return pets
}

// Pet coerce un animal isolé (aplatissement refuge inclus)
func Pet(raw json.RawMessage) models.AdoptablePet {
	m := looseItem(raw)

	name := m.str("name", "title")
	if name == "" {
		name = "Unnamed Pet"
	}
	petType := m.str("type", "animalType")
	if petType == "" {
		petType = "Pet"
	}
	image := m.firstImage()
	if image == "" {
		image = PlaceholderPetImage
	}
	status := m.str("status")
	if status == "" {
		status = "Available"
	}

	return models.AdoptablePet{
		ID:          m.id(),
		Name:        name,
		Type:        petType,
		Breed:       m.str("breed", "breedName"),
		Age:         m.str("age", "ageInfo"),
		Gender:      m.str("gender"),
		Size:        m.str("size"),
		Description: m.str("description", "details"),
		Image:       image,
		Status:      status,
		Shelter:     m.shelter(),
	}
}

// Centers coerce une réponse liste de centres de garderie
func Centers(raw json.RawMessage) []models.DaycareCenter {
	items := ExtractList(raw, KnownListKeys)
	centers := make([]models.DaycareCenter, 0, len(items))
	for _, item := range items {
		centers = append(centers, Center(item))
	}
	return centers
}

// Center coerce un centre isolé
func Center(raw json.RawMessage) models.DaycareCenter {
	m := looseItem(raw)

	name := m.str("name", "title")
	if name == "" {
		name = "Daycare Center"
	}
	image := m.firstImage()
	if image == "" {
		image = PlaceholderCenterImage(name)
	}
	rating := m.num("rating")
	if rating <= 0 {
		rating = DefaultRating
	}

	center := models.DaycareCenter{
		ID:          m.id(),
		Name:        name,
		Location:    m.str("location"),
		City:        m.str("city"),
		Description: m.str("description", "details"),
		PricePerDay: m.num("pricePerDay", "price"),
		Rating:      rating,
		Image:       image,
	}

	var services []string
	if raw, ok := m["services"]; ok {
		_ = json.Unmarshal(raw, &services)
	}
	center.Services = services

	if raw, ok := m["operatingHours"]; ok {
		hours := looseItem(raw)
		center.OperatingHours.OpenTime = hours.str("openTime")
		center.OperatingHours.CloseTime = hours.str("closeTime")
	}

	return center
}
