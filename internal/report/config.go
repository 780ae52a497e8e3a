package report

// Config points the report builders at the letterhead assets. When
// FontRegular is empty the canvas falls back to its built-in font pair,
// which keeps test environments free of TTF fixtures.
type Config struct {
	AssetDir    string
	FontFamily  string
	FontRegular string
	FontBold    string
}

// Profile carries the shop identity printed on the invoice signature block.
type Profile struct {
	ShopName    string `yaml:"shop_name"`
	BillerName  string `yaml:"biller_name"`
	BillerTitle string `yaml:"biller_title"`
	Currency    string `yaml:"currency"`
}

func DefaultProfile() Profile {
	return Profile{
		ShopName:    "Taller Buen Vecino",
		BillerName:  "Evelio Mojena Álvarez",
		BillerTitle: "Jefe de Taller",
		Currency:    "CUP",
	}
}
