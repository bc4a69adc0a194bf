package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{
			name:    "empty summary falls back",
			summary: "",
			want:    []string{Fallback},
		},
		{
			name:    "no trigger falls back",
			summary: "bonjour",
			want:    []string{Fallback},
		},
		{
			name:    "ties keep declaration order",
			summary: "Le client exprime sa frustration et insulte le livreur, colis perdu pour la quatrieme fois",
			want:    []string{"Comportement du livreur", "Colis perdu"},
		},
		{
			name:    "higher score first",
			summary: "retard retard, colis perdu, casse",
			want:    []string{"Retard de livraison", "Colis endommage", "Colis perdu"},
		},
		{
			name:    "capped at three",
			summary: "retard, casse, perdu, sms",
			want:    []string{"Retard de livraison", "Colis endommage", "Communication et Notifications"},
		},
		{
			name:    "nested triggers add up",
			summary: "Colis perdu. Déposé au point relais.",
			want:    []string{"Point relais", "Colis perdu"},
		},
	}

	ex := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ex.Extract(tt.summary))
		})
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	assert.Len(t, labels, 14)
	assert.Equal(t, "Livraison non recue", labels[0])
	assert.Equal(t, "Retour de colis", labels[13])
}
