package attendance

import (
	"sort"
	"strings"
	"time"

	"Backend-SriSudha-School/src/models"
)

// UngroupedLabel is the bucket for roster members with no group value.
const UngroupedLabel = "Ungrouped"

// BuildSessionReport computes the per-group summary for one (date, session)
// from a roster snapshot and the records stored for that key.
//
// นักเรียนที่ยังไม่ถูกบันทึกจะนับเป็น "ขาด" ในรายงาน ถึงแม้หน้าจอแก้ไขจะ
// default เป็น present ก็ตาม (เจตนาเดิมของระบบ อย่าแก้)
func BuildSessionReport(date, session string, roster []models.RosterEntry, records map[string]models.AttendanceRecord, generatedAt time.Time) models.SessionReport {
	byGroup := make(map[string][]models.ReportStudent)

	for _, member := range roster {
		group := strings.TrimSpace(member.Group)
		if group == "" {
			group = UngroupedLabel
		}

		rec, ok := records[member.AdmissionNo]
		if !ok {
			// unmarked → absent for reporting purposes
			rec = models.AttendanceRecord{Present: false}
		}

		byGroup[group] = append(byGroup[group], models.ReportStudent{
			AdmissionNo: member.AdmissionNo,
			Name:        member.Name,
			Present:     rec.Present,
			IntimatedBy: rec.IntimatedBy,
			Reason:      rec.Reason,
		})
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	summary := make([]models.GroupSummary, 0, len(groups))
	for _, g := range groups {
		entry := models.GroupSummary{Group: g, Students: byGroup[g]}
		for _, st := range entry.Students {
			if st.Present {
				entry.PresentCount++
			} else {
				entry.AbsentCount++
			}
		}
		summary = append(summary, entry)
	}

	return models.SessionReport{
		Date:        date,
		Session:     session,
		GeneratedAt: generatedAt,
		Summary:     summary,
	}
}
