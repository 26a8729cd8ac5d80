package calendar

// Tabel libur nasional dan cuti bersama sesuai SKB tiga menteri,
// tahun 2023-2025. Tahun baru ditambahkan lewat rilis, bukan runtime.

var nationalHolidays = map[string]string{
	// 2023
	"2023-01-01": "Tahun Baru Masehi",
	"2023-01-22": "Tahun Baru Imlek",
	"2023-02-18": "Isra Mikraj",
	"2023-03-22": "Hari Suci Nyepi",
	"2023-04-07": "Wafat Isa Almasih",
	"2023-04-22": "Hari Raya Idul Fitri",
	"2023-04-23": "Hari Raya Idul Fitri",
	"2023-05-01": "Hari Buruh Internasional",
	"2023-05-18": "Kenaikan Isa Almasih",
	"2023-06-01": "Hari Lahir Pancasila",
	"2023-06-04": "Hari Raya Waisak",
	"2023-06-29": "Hari Raya Idul Adha",
	"2023-07-19": "Tahun Baru Islam",
	"2023-08-17": "Hari Kemerdekaan RI",
	"2023-09-28": "Maulid Nabi Muhammad SAW",
	"2023-12-25": "Hari Raya Natal",

	// 2024
	"2024-01-01": "Tahun Baru Masehi",
	"2024-02-08": "Isra Mikraj",
	"2024-02-10": "Tahun Baru Imlek",
	"2024-03-11": "Hari Suci Nyepi",
	"2024-03-29": "Wafat Isa Almasih",
	"2024-03-31": "Hari Paskah",
	"2024-04-10": "Hari Raya Idul Fitri",
	"2024-04-11": "Hari Raya Idul Fitri",
	"2024-05-01": "Hari Buruh Internasional",
	"2024-05-09": "Kenaikan Isa Almasih",
	"2024-05-23": "Hari Raya Waisak",
	"2024-06-01": "Hari Lahir Pancasila",
	"2024-06-17": "Hari Raya Idul Adha",
	"2024-07-07": "Tahun Baru Islam",
	"2024-08-17": "Hari Kemerdekaan RI",
	"2024-09-16": "Maulid Nabi Muhammad SAW",
	"2024-12-25": "Hari Raya Natal",

	// 2025
	"2025-01-01": "Tahun Baru Masehi",
	"2025-01-27": "Isra Mikraj",
	"2025-01-29": "Tahun Baru Imlek",
	"2025-03-29": "Hari Suci Nyepi",
	"2025-03-31": "Hari Raya Idul Fitri",
	"2025-04-01": "Hari Raya Idul Fitri",
	"2025-04-18": "Wafat Isa Almasih",
	"2025-04-20": "Hari Paskah",
	"2025-05-01": "Hari Buruh Internasional",
	"2025-05-12": "Hari Raya Waisak",
	"2025-05-29": "Kenaikan Isa Almasih",
	"2025-06-01": "Hari Lahir Pancasila",
	"2025-06-06": "Hari Raya Idul Adha",
	"2025-06-27": "Tahun Baru Islam",
	"2025-08-17": "Hari Kemerdekaan RI",
	"2025-09-05": "Maulid Nabi Muhammad SAW",
	"2025-12-25": "Hari Raya Natal",
}

var collectiveLeaveDays = map[string]string{
	// 2023
	"2023-01-23": "Cuti Bersama Imlek",
	"2023-03-23": "Cuti Bersama Nyepi",
	"2023-04-19": "Cuti Bersama Idul Fitri",
	"2023-04-20": "Cuti Bersama Idul Fitri",
	"2023-04-21": "Cuti Bersama Idul Fitri",
	"2023-04-24": "Cuti Bersama Idul Fitri",
	"2023-04-25": "Cuti Bersama Idul Fitri",
	"2023-06-02": "Cuti Bersama Waisak",
	"2023-06-28": "Cuti Bersama Idul Adha",
	"2023-06-30": "Cuti Bersama Idul Adha",
	"2023-12-26": "Cuti Bersama Natal",

	// 2024
	"2024-02-09": "Cuti Bersama Imlek",
	"2024-03-12": "Cuti Bersama Nyepi",
	"2024-04-08": "Cuti Bersama Idul Fitri",
	"2024-04-09": "Cuti Bersama Idul Fitri",
	"2024-04-12": "Cuti Bersama Idul Fitri",
	"2024-05-10": "Cuti Bersama Kenaikan Isa Almasih",
	"2024-05-24": "Cuti Bersama Waisak",
	"2024-06-18": "Cuti Bersama Idul Adha",
	"2024-12-26": "Cuti Bersama Natal",

	// 2025
	"2025-01-28": "Cuti Bersama Imlek",
	"2025-03-28": "Cuti Bersama Nyepi",
	"2025-04-02": "Cuti Bersama Idul Fitri",
	"2025-04-03": "Cuti Bersama Idul Fitri",
	"2025-04-04": "Cuti Bersama Idul Fitri",
	"2025-04-07": "Cuti Bersama Idul Fitri",
	"2025-05-13": "Cuti Bersama Waisak",
	"2025-05-30": "Cuti Bersama Kenaikan Isa Almasih",
	"2025-06-09": "Cuti Bersama Idul Adha",
	"2025-12-26": "Cuti Bersama Natal",
}

var indonesia = NewHolidaySet(nationalHolidays, collectiveLeaveDays)

// Indonesia returns the shared holiday set for the configured year range.
func Indonesia() *HolidaySet {
	return indonesia
}
