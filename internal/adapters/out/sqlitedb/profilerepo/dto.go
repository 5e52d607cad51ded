// Package profilerepo persists the carrier profile as a JSON document
// under its own record key, independently of orders.
package profilerepo

import (
	"freightmatch/internal/core/domain/model/profile"
)

// ProfileDTO is the JSON representation of the carrier profile record.
type ProfileDTO struct {
	Name         string  `json:"name"`
	LicensePlate string  `json:"licensePlate"`
	PhotoURI     *string `json:"photoUri"`
}

// fromDomain converts the profile aggregate to its stored representation.
func fromDomain(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:         p.Name(),
		LicensePlate: p.LicensePlate(),
		PhotoURI:     p.PhotoURI(),
	}
}

// toDomain reconstructs the profile aggregate from its stored
// representation.
func toDomain(dto ProfileDTO) *profile.Profile {
	return profile.RestoreProfile(dto.Name, dto.LicensePlate, dto.PhotoURI)
}
