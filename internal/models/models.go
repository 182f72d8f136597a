package models

// All lists every table in migration order: referenced tables first.
func All() []any {
	return []any{
		&Customer{},
		&Staff{},
		&Account{},
		&Transport{},
		&KoiFish{},
		&FishProfile{},
		&Order{},
		&OrderDetails{},
		&HealthStatus{},
		&Feedback{},
	}
}
