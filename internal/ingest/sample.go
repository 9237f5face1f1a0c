package ingest

import "github.com/mahadqr/timetable-api/internal/app/models"

// SampleTimetable returns the embedded fallback timetable, mirroring the
// structure of the real export.
func SampleTimetable() []models.ClassSession {
	return []models.ClassSession{
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29 Academic Block II (52)", Day: "Monday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
		{ClassCode: "BCS-1K", Subject: "IST", Teacher: "Abdullah Siddqui", Room: "E-30 Academic Block II (52)", Day: "Monday", TimeSlot: "2", StartTime: "08:55", EndTime: "09:45"},
		{ClassCode: "BCS-1K", Subject: "CAL", Teacher: "Asma Masood", Room: "E-30 Academic Block II (52)", Day: "Monday", TimeSlot: "3", StartTime: "09:50", EndTime: "10:40"},
		{ClassCode: "BCS-1K", Subject: "FE", Teacher: "Javeria Ali Wadho", Room: "E-32 Academic Block II (52)", Day: "Monday", TimeSlot: "6", StartTime: "12:35", EndTime: "13:25"},
		{ClassCode: "BCS-1K", Subject: "FE", Teacher: "Javeria Ali Wadho", Room: "E-32 Academic Block II (52)", Day: "Monday", TimeSlot: "7", StartTime: "13:30", EndTime: "14:20"},

		{ClassCode: "BCS-1A", Subject: "PF", Teacher: "Sobia Iftikhar", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "7", StartTime: "13:30", EndTime: "14:20"},
		{ClassCode: "BCS-1A", Subject: "AP", Teacher: "Muhammad Rahim", Room: "E-29 Academic Block II (52)", Day: "Monday", TimeSlot: "5", StartTime: "11:40", EndTime: "12:30"},
		{ClassCode: "BCS-1A", Subject: "CAL", Teacher: "Aneesa Nawaz", Room: "E-29 Academic Block II (52)", Day: "Monday", TimeSlot: "6", StartTime: "12:35", EndTime: "13:25"},

		{ClassCode: "BCS-1B", Subject: "AP", Teacher: "Ishtiaq Ahmed", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "5", StartTime: "11:40", EndTime: "12:30"},
		{ClassCode: "BCS-1B", Subject: "PF", Teacher: "Sobia Iftikhar", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "6", StartTime: "12:35", EndTime: "13:25"},
		{ClassCode: "BCS-1B", Subject: "ICP", Teacher: "Muhammad Adeel", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "8", StartTime: "14:25", EndTime: "15:15"},

		{ClassCode: "BCS-1C", Subject: "FE", Teacher: "Faiza Mumtaz", Room: "D-27 Academic Block II (50)", Day: "Monday", TimeSlot: "5", StartTime: "11:40", EndTime: "12:30"},
		{ClassCode: "BCS-1C", Subject: "AP", Teacher: "Muhammad Rahim", Room: "D-27 Academic Block II (50)", Day: "Monday", TimeSlot: "7", StartTime: "13:30", EndTime: "14:20"},
		{ClassCode: "BCS-1C", Subject: "CAL", Teacher: "Aneesa Nawaz", Room: "D-27 Academic Block II (50)", Day: "Monday", TimeSlot: "8", StartTime: "14:25", EndTime: "15:15"},
		{ClassCode: "BCS-1C", Subject: "ICP", Teacher: "Khushboo", Room: "D-27 Academic Block II (50)", Day: "Monday", TimeSlot: "9", StartTime: "15:20", EndTime: "16:05"},

		{ClassCode: "BCS-1D", Subject: "PF", Teacher: "Hajra Ahmed", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "1", StartTime: "08:00", EndTime: "08:50"},
		{ClassCode: "BCS-1D", Subject: "FE", Teacher: "Javeriya Ahmed", Room: "D-26 Academic Block II (50)", Day: "Monday", TimeSlot: "2", StartTime: "08:55", EndTime: "09:45"},
		{ClassCode: "BCS-1D", Subject: "ICP", Teacher: "Muhammad Adeel", Room: "D-27 Academic Block II (50)", Day: "Monday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
		{ClassCode: "BCS-1D", Subject: "AP", Teacher: "Ishtiaq Ahmed", Room: "D-28 Academic Block II (50)", Day: "Monday", TimeSlot: "6", StartTime: "12:35", EndTime: "13:25"},
		{ClassCode: "BCS-1D", Subject: "IST", Teacher: "Farhan Ali Memon", Room: "D-28 Academic Block II (50)", Day: "Monday", TimeSlot: "7", StartTime: "13:30", EndTime: "14:20"},

		{ClassCode: "BCS-3A", Subject: "DS", Teacher: "Dr. Jawwad Shamsi", Room: "R-12 Academic Block I (70)", Day: "Monday", TimeSlot: "2", StartTime: "08:55", EndTime: "09:45"},
		{ClassCode: "BCS-3A", Subject: "COAL", Teacher: "Aashir Mehboob", Room: "A-7 Academic Block II (50)", Day: "Monday", TimeSlot: "1", StartTime: "08:00", EndTime: "08:50"},
		{ClassCode: "BCS-3A", Subject: "TOA", Teacher: "Ubaidullah", Room: "C-17 Academic Block II (59)", Day: "Monday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},

		{ClassCode: "BCS-5A", Subject: "DAA", Teacher: "Muhammad Kashif", Room: "E-1 Academic Block I (50)", Day: "Monday", TimeSlot: "5", StartTime: "11:40", EndTime: "12:30"},
		{ClassCode: "BCS-5A", Subject: "DBS", Teacher: "Hajra Ahmed", Room: "E-1 Academic Block I (50)", Day: "Monday", TimeSlot: "6", StartTime: "12:35", EndTime: "13:25"},
		{ClassCode: "BCS-5A", Subject: "CN", Teacher: "Dr. Farrukh Salim", Room: "E-1 Academic Block I (50)", Day: "Monday", TimeSlot: "8", StartTime: "14:25", EndTime: "15:15"},
	}
}
