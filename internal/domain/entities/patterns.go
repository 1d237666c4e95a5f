package entities

import "regexp"

// Padrões compartilhados pelas validações das entidades
var (
	basicTextPattern  = regexp.MustCompile(`^[\w ]+$`)
	lettersPattern    = regexp.MustCompile(`^[A-Za-z ]+$`)
	iso3166a2Pattern  = regexp.MustCompile(`^[A-Za-z]{2}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}(-?\d{3,4})?$`)

	stripePaymentIDPattern = regexp.MustCompile(`^pi_[A-Za-z0-9]+$`)
	stripeMethodIDPattern  = regexp.MustCompile(`^pm_[A-Za-z0-9]+$`)
)
