// Package profile contains the carrier profile aggregate. The system
// models a single local carrier identity; the profile holds the display
// data shown to shippers and is persisted independently of orders.
package profile

import "errors"

// Placeholder values used until the carrier edits the profile.
const (
	DefaultName         = "Carrier"
	DefaultLicensePlate = "AAA-0000"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

// Profile is the single local carrier profile: display name, vehicle
// license plate and an optional avatar photo reference.
//
// Field contents are deliberately not validated (empty name and plate are
// accepted); the aggregate only guards proper construction and merge
// semantics on update.
type Profile struct {
	// name is the carrier display name
	name string

	// licensePlate is the vehicle license plate string
	licensePlate string

	// photoURI is the locally captured avatar image reference, nil when
	// no photo has been captured
	photoURI *string

	// isConstructed ensures the profile was created via a constructor
	isConstructed bool
}

// Patch carries a partial profile update. Nil fields are left unchanged;
// only the supplied keys replace the current values.
type Patch struct {
	Name         *string
	LicensePlate *string
	PhotoURI     *string
}

// NewProfile creates a profile with the built-in placeholder values and no
// photo. Used on first launch, before any persisted record exists.
func NewProfile() *Profile {
	return &Profile{
		name:          DefaultName,
		licensePlate:  DefaultLicensePlate,
		isConstructed: true,
	}
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(name, licensePlate string, photoURI *string) *Profile {
	return &Profile{
		name:          name,
		licensePlate:  licensePlate,
		photoURI:      photoURI,
		isConstructed: true,
	}
}

// Validate ensures the Profile instance was properly constructed.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}

	return nil
}

// Name returns the carrier display name.
func (p *Profile) Name() string {
	return p.name
}

// LicensePlate returns the vehicle license plate.
func (p *Profile) LicensePlate() string {
	return p.licensePlate
}

// PhotoURI returns the avatar photo reference, or nil when none is set.
func (p *Profile) PhotoURI() *string {
	return p.photoURI
}

// Apply merges the patch into the profile. Only the fields present in the
// patch are replaced; everything else keeps its prior value.
func (p *Profile) Apply(patch Patch) {
	if patch.Name != nil {
		p.name = *patch.Name
	}
	if patch.LicensePlate != nil {
		p.licensePlate = *patch.LicensePlate
	}
	if patch.PhotoURI != nil {
		p.photoURI = patch.PhotoURI
	}
}
