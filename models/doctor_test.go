package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDoctor(t *testing.T) {
	doctor := FindDoctor("Leila Cameron")
	require.NotNil(t, doctor)
	assert.Equal(t, "Leila Cameron", doctor.Name)
	assert.Equal(t, "/assets/images/dr-cameron.png", doctor.Image)
}

func TestFindDoctorUnknownName(t *testing.T) {
	assert.Nil(t, FindDoctor("Gregory House"))
	assert.Nil(t, FindDoctor(""))
}
