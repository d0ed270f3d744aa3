package catalog

import "github.com/PPKK-Project/Tlan/internal/core/domain"

// Airports is the fixed seed catalog: Korean departure airports plus the
// major arrival airports the travel planner supports. Seeded into storage
// once, when the airport collection is empty.
var Airports = []domain.Airport{
	// Departures (South Korea)
	{Code: "ICN", Name: "인천", Country: "대한민국", City: "서울/인천"},
	{Code: "GMP", Name: "서울/김포", Country: "대한민국", City: "서울"},
	{Code: "PUS", Name: "부산/김해", Country: "대한민국", City: "부산"},
	{Code: "CJU", Name: "제주", Country: "대한민국", City: "제주"},
	{Code: "TAE", Name: "대구", Country: "대한민국", City: "대구"},
	{Code: "CJJ", Name: "청주", Country: "대한민국", City: "청주"},
	{Code: "MWX", Name: "무안", Country: "대한민국", City: "무안"},
	{Code: "YNY", Name: "양양", Country: "대한민국", City: "양양"},
	{Code: "KWJ", Name: "광주", Country: "대한민국", City: "광주"},
	{Code: "RSU", Name: "여수", Country: "대한민국", City: "여수"},
	{Code: "USN", Name: "울산", Country: "대한민국", City: "울산"},
	{Code: "KPO", Name: "포항/경주", Country: "대한민국", City: "포항"},
	{Code: "HIN", Name: "사천", Country: "대한민국", City: "사천"},
	{Code: "KUV", Name: "군산", Country: "대한민국", City: "군산"},
	{Code: "WJU", Name: "원주", Country: "대한민국", City: "원주"},

	// Japan
	{Code: "NRT", Name: "도쿄/나리타", Country: "일본", City: "도쿄"},
	{Code: "HND", Name: "도쿄/하네다", Country: "일본", City: "도쿄"},
	{Code: "KIX", Name: "오사카/간사이", Country: "일본", City: "오사카"},
	{Code: "FUK", Name: "후쿠오카", Country: "일본", City: "후쿠오카"},
	{Code: "CTS", Name: "삿포로/신치토세", Country: "일본", City: "삿포로"},
	{Code: "OKA", Name: "오키나와/나하", Country: "일본", City: "오키나와"},

	// Vietnam
	{Code: "DAD", Name: "다낭", Country: "베트남", City: "다낭"},
	{Code: "CXR", Name: "나트랑/깜란", Country: "베트남", City: "나트랑"},
	{Code: "HAN", Name: "하노이/노이바이", Country: "베트남", City: "하노이"},
	{Code: "SGN", Name: "호치민/떤썬녓", Country: "베트남", City: "호치민"},
	{Code: "PQC", Name: "푸꾸옥", Country: "베트남", City: "푸꾸옥"},

	// Thailand
	{Code: "BKK", Name: "방콕/수완나품", Country: "태국", City: "방콕"},
	{Code: "DMK", Name: "방콕/돈므앙", Country: "태국", City: "방콕"},
	{Code: "HKT", Name: "푸켓", Country: "태국", City: "푸켓"},
	{Code: "CNX", Name: "치앙마이", Country: "태국", City: "치앙마이"},

	// Philippines
	{Code: "CEB", Name: "세부/막탄", Country: "필리핀", City: "세부"},
	{Code: "MNL", Name: "마닐라/니노이", Country: "필리핀", City: "마닐라"},
	{Code: "KLO", Name: "보라카이/칼리보", Country: "필리핀", City: "보라카이"},

	// Other Asia and Oceania
	{Code: "TPE", Name: "타이베이/타오위안", Country: "대만", City: "타이베이"},
	{Code: "HKG", Name: "홍콩", Country: "홍콩", City: "홍콩"},
	{Code: "MFM", Name: "마카오", Country: "마카오", City: "마카오"},
	{Code: "SIN", Name: "싱가포르/창이", Country: "싱가포르", City: "싱가포르"},
	{Code: "GUM", Name: "괌", Country: "미국", City: "괌"},
	{Code: "SPN", Name: "사이판", Country: "미국", City: "사이판"},

	// Americas
	{Code: "HNL", Name: "하와이/호놀룰루", Country: "미국", City: "하와이"},
	{Code: "LAX", Name: "로스앤젤레스", Country: "미국", City: "로스앤젤레스"},
	{Code: "JFK", Name: "뉴욕/JFK", Country: "미국", City: "뉴욕"},

	// Europe
	{Code: "CDG", Name: "파리/샤를드골", Country: "프랑스", City: "파리"},
	{Code: "LHR", Name: "런던/히드로", Country: "영국", City: "런던"},
	{Code: "FCO", Name: "로마/피우미치노", Country: "이탈리아", City: "로마"},
}
