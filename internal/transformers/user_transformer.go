package transformers

import "estatehub/internal/models"

type userTransformer struct{}

func NewUserTransformer() UserTransformer {
	return &userTransformer{}
}

func (t *userTransformer) ToPublic(user *models.User) models.PublicUser {
	return models.PublicUser{
		ID:       user.ID.Hex(),
		FullName: user.FullName,
		Email:    user.Email,
		Mobile:   user.Mobile,
		Role:     user.Role,
	}
}
