package entity

import "strings"

// Specialties is the vocabulary offered by the filter panel.
// Names never contain a comma, the URL list delimiter.
var Specialties = []string{
	"General-Physician", "Dentist", "Dermatologist", "Paediatrician",
	"Gynaecologist", "ENT", "Diabetologist", "Cardiologist",
	"Physiotherapist", "Endocrinologist", "Orthopaedic", "Ophthalmologist",
	"Gastroenterologist", "Pulmonologist", "Psychiatrist", "Urologist",
	"Dietitian-Nutritionist", "Psychologist", "Sexologist", "Nephrologist",
	"Neurologist", "Oncologist", "Ayurveda", "Homeopath",
}

// SpecialtyLabel returns the display form of a specialty name.
func SpecialtyLabel(name string) string {
	return strings.ReplaceAll(name, "-", "/")
}
