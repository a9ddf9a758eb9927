package domain

// DefaultMenu is the menu seeded into an empty pizzas table.
func DefaultMenu() []Pizza {
	return []Pizza{
		{Name: "Margherita", Description: "Paradicsomszósz, mozzarella, bazsalikom", Price: 1200, ImageFilename: "1. Margherita.png"},
		{Name: "Quattro Formaggi", Description: "Négy fajta sajt", Price: 1500, ImageFilename: "2. Quattro Formaggi.png"},
		{Name: "Pepperoni", Description: "Paradicsomszósz, mozzarella, pepperoni", Price: 1300, ImageFilename: "3. Pepperoni.png"},
		{Name: "Carnivore", Description: "Szalonna, sonka, kolbász, hagyma", Price: 1600, ImageFilename: "4. Carnivore.png"},
		{Name: "Vegetariana", Description: "Paradicsom, paprika, gomba, zöldségek", Price: 1250, ImageFilename: "5. Vegetariana.png"},
		{Name: "Prosciutto e Rucola", Description: "Prosciutto, rukkola, parmezan", Price: 1450, ImageFilename: "6. Prosciutto e Rucola.png"},
		{Name: "BBQ Chicken", Description: "BBQ szósz, csirke, lilahagyma, bacon", Price: 1400, ImageFilename: "7. BBQ Chicken.png"},
		{Name: "Quattro Stagioni", Description: "Négy évszak: szalonna, gomba, tojás, olajbogyó", Price: 1550, ImageFilename: "8. Quattro Stagioni.png"},
		{Name: "Calzone", Description: "Zárható: ricotta, sonka, mozzarella", Price: 1350, ImageFilename: "9. Calzone.png"},
		{Name: "Spicy Diavola", Description: "Csípős: pepperoni, chilipaprika, garlic", Price: 1300, ImageFilename: "10. Spicy Diavola.png"},
		{Name: "Seafood Deluxe", Description: "Garnéla, kagyló, tintahal, olívaolaj", Price: 1800, ImageFilename: "11. Seafood Deluxe.png"},
		{Name: "Mushroom Paradise", Description: "Kiváló gombák", Price: 1280, ImageFilename: "12. Mushroom Paradise.png"},
		{Name: "Hawaiian Surprise", Description: "Sonka, ananász, szalonna", Price: 1400, ImageFilename: "13. Hawaiian Surprise.png"},
		{Name: "Truffle Deluxe", Description: "Fehér szarvasgomba, prosciutto, parmezan", Price: 2000, ImageFilename: "14. Truffle Deluxe.png"},
		{Name: "Bianca", Description: "Fehér szósz, mozzarella, ricotta, spinát", Price: 1150, ImageFilename: "15. Bianca.png"},
	}
}
