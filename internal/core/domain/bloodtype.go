package domain

import (
	"fmt"

	"bloodlink/pkg/apperror"
)

// BloodGroup is the ABO grouping of a unit or recipient.
type BloodGroup string

const (
	BloodGroupA  BloodGroup = "A"
	BloodGroupB  BloodGroup = "B"
	BloodGroupAB BloodGroup = "AB"
	BloodGroupO  BloodGroup = "O"
)

// RhFactor is the Rhesus factor of a unit or recipient.
type RhFactor string

const (
	RhPositive RhFactor = "positive"
	RhNegative RhFactor = "negative"
)

// BloodType pairs an ABO group with an Rh factor.
type BloodType struct {
	Group BloodGroup `json:"blood_group"`
	Rh    RhFactor   `json:"rh_factor"`
}

func (t BloodType) String() string {
	if t.Rh == RhPositive {
		return string(t.Group) + "+"
	}
	return string(t.Group) + "-"
}

// ParseBloodGroup validates an ABO group string.
func ParseBloodGroup(s string) (BloodGroup, error) {
	switch BloodGroup(s) {
	case BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO:
		return BloodGroup(s), nil
	}
	return "", apperror.ErrInvalidBloodType(s)
}

// ParseRhFactor validates an Rh factor string.
func ParseRhFactor(s string) (RhFactor, error) {
	switch RhFactor(s) {
	case RhPositive, RhNegative:
		return RhFactor(s), nil
	}
	return "", apperror.ErrInvalidBloodType(s)
}

// ParseBloodType validates a (group, rh) pair.
func ParseBloodType(group, rh string) (BloodType, error) {
	g, err := ParseBloodGroup(group)
	if err != nil {
		return BloodType{}, err
	}
	r, err := ParseRhFactor(rh)
	if err != nil {
		return BloodType{}, err
	}
	return BloodType{Group: g, Rh: r}, nil
}

// AllBloodTypes lists the 8 group/rh combinations in a fixed order.
func AllBloodTypes() []BloodType {
	return []BloodType{
		{BloodGroupO, RhNegative}, {BloodGroupO, RhPositive},
		{BloodGroupA, RhNegative}, {BloodGroupA, RhPositive},
		{BloodGroupB, RhNegative}, {BloodGroupB, RhPositive},
		{BloodGroupAB, RhNegative}, {BloodGroupAB, RhPositive},
	}
}

// donorMatrix maps each recipient type to the donor types safe to transfuse
// into it, following the standard clinical rules: O donates to everyone, AB
// receives from everyone, A receives from A/O, B receives from B/O; an Rh-
// donor may serve Rh- and Rh+ recipients, an Rh+ donor only Rh+ recipients.
var donorMatrix = buildDonorMatrix()

func buildDonorMatrix() map[BloodType][]BloodType {
	m := make(map[BloodType][]BloodType, 8)
	for _, recipient := range AllBloodTypes() {
		var donors []BloodType
		for _, donor := range AllBloodTypes() {
			if aboCompatible(donor.Group, recipient.Group) && rhCompatible(donor.Rh, recipient.Rh) {
				donors = append(donors, donor)
			}
		}
		m[recipient] = donors
	}
	return m
}

func aboCompatible(donor, recipient BloodGroup) bool {
	switch {
	case donor == BloodGroupO:
		return true
	case recipient == BloodGroupAB:
		return true
	default:
		return donor == recipient
	}
}

func rhCompatible(donor, recipient RhFactor) bool {
	return donor == RhNegative || recipient == RhPositive
}

// CompatibleDonors returns the donor blood types that are safe to transfuse
// into a recipient of the given type. The result is a precomputed lookup and
// must not be mutated by callers.
func CompatibleDonors(recipient BloodType) ([]BloodType, error) {
	donors, ok := donorMatrix[recipient]
	if !ok {
		return nil, apperror.ErrInvalidBloodType(fmt.Sprintf("%s/%s", recipient.Group, recipient.Rh))
	}
	return donors, nil
}
