// Package catalog holds the code-embedded reference tables the derivation and
// seeding services run over: the supported-country maps and the airport seed
// list. The tables are fixed at build time; nothing mutates them at runtime.
package catalog

// CountryCurrency maps each supported ISO 3166-1 alpha-2 country code to the
// ISO 4217 code of its currency. This map is the authoritative enumeration of
// supported countries: country info is derived for exactly these keys.
var CountryCurrency = map[string]string{
	"KR": "KRW", "US": "USD", "AE": "AED",
	"AF": "AFN", "AL": "ALL", "AM": "AMD",
	"AR": "ARS", "AU": "AUD", "AZ": "AZN",
	"BD": "BDT", "BG": "BGN", "BO": "BOB",
	"BR": "BRL", "CA": "CAD", "CH": "CHF",
	"CL": "CLP", "CN": "CNY", "CO": "COP",
	"CR": "CRC", "CZ": "CZK", "DE": "EUR",
	"DK": "DKK", "EG": "EGP", "ES": "EUR",
	"FR": "EUR", "GB": "GBP", "HK": "HKD",
	"HU": "HUF", "ID": "IDR", "IN": "INR",
	"IT": "EUR", "JP": "JPY", "KH": "KHR",
	"LK": "LKR", "MN": "MNT", "MX": "MXN",
	"MY": "MYR", "NO": "NOK", "NZ": "NZD",
	"PE": "PEN", "PH": "PHP", "PL": "PLN",
	"RU": "RUB", "SE": "SEK", "SG": "SGD",
	"TH": "THB", "TR": "TRY", "TW": "TWD",
	"UA": "UAH", "UY": "UYU", "VN": "VND",
	"ZA": "ZAR", "GU": "USD", // Guam settles in USD
}

// CountryName maps supported country codes to their Korean display names.
// Codes absent from this map fall back to the code itself during derivation.
var CountryName = map[string]string{
	"KR": "대한민국", "US": "미국", "AE": "아랍에미리트",
	"AF": "아프가니스탄", "AL": "알바니아", "AM": "아르메니아",
	"AR": "아르헨티나", "AU": "호주", "AZ": "아제르바이잔",
	"BD": "방글라데시", "BG": "불가리아", "BO": "볼리비아",
	"BR": "브라질", "CA": "캐나다", "CH": "스위스",
	"CL": "칠레", "CN": "중국", "CO": "콜롬비아",
	"CR": "코스타리카", "CZ": "체코", "DE": "독일",
	"DK": "덴마크", "EG": "이집트", "ES": "스페인",
	"FR": "프랑스", "GB": "영국", "HK": "홍콩",
	"HU": "헝가리", "ID": "인도네시아", "IN": "인도",
	"IT": "이탈리아", "JP": "일본", "KH": "캄보디아",
	"LK": "스리랑카", "MN": "몽골", "MX": "멕시코",
	"MY": "말레이시아", "NO": "노르웨이", "NZ": "뉴질랜드",
	"PE": "페루", "PH": "필리핀", "PL": "폴란드",
	"RU": "러시아", "SE": "스웨덴", "SG": "싱가포르",
	"TH": "태국", "TR": "튀르키예", "TW": "대만",
	"UA": "우크라이나", "UY": "우루과이", "VN": "베트남",
	"ZA": "남아프리카 공화국", "GU": "괌",
}
