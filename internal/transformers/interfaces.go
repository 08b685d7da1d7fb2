package transformers

import "estatehub/internal/models"

// PropertyTransformer maps property documents to their public shape.
type PropertyTransformer interface {
	ToResponse(property *models.Property) PropertyResponse
	ToResponseList(properties []models.Property) []PropertyResponse
}

// UserTransformer maps user documents to their public shape.
type UserTransformer interface {
	ToPublic(user *models.User) models.PublicUser
}
