package model

// defaultWilayaNames is the canonical delivery zone list. Prices default to
// zero until the admin sets them.
var defaultWilayaNames = []string{
	"Adrar",
	"Chlef",
	"Laghouat",
	"Oum El Bouaghi",
	"Batna",
	"Béjaïa",
	"Biskra",
	"Béchar",
	"Blida",
	"Bouïra",
	"Tamanrasset",
	"Tébessa",
	"Tlemcen",
	"Tiaret",
	"Tizi Ouzou",
	"Alger",
	"Djelfa",
	"Jijel",
	"Sétif",
	"Saïda",
	"Skikda",
	"Sidi Bel Abbès",
	"Annaba",
	"Guelma",
	"Constantine",
	"Médéa",
	"Mostaganem",
	"M'Sila",
	"Mascara",
	"Ouargla",
	"Oran",
	"El Bayadh",
	"Illizi",
	"Bordj Bou Arréridj",
	"Boumerdès",
	"El Tarf",
	"Tindouf",
	"Tissemsilt",
	"El Oued",
	"Khenchela",
	"Souk Ahras",
	"Tipaza",
	"Mila",
	"Aïn Defla",
	"Naâma",
	"Aïn Témouchent",
	"Ghardaïa",
	"Relizane",
	"Timimoun",
	"Bordj Badji Mokhtar",
	"Ouled Djellal",
	"Béni Abbès",
	"In Salah",
	"In Guezzam",
	"Touggourt",
	"Djanet",
	"El M'Ghair",
	"Meniaa",
}

// DefaultWilayas returns the canonical list with zero prices.
func DefaultWilayas() []DeliveryWilaya {
	wilayas := make([]DeliveryWilaya, 0, len(defaultWilayaNames))
	for _, name := range defaultWilayaNames {
		wilayas = append(wilayas, DeliveryWilaya{Name: name})
	}
	return wilayas
}
