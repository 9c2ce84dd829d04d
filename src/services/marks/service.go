package marks

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/models"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultStatus = "Pass"

// UpsertMark - บันทึกคะแนน 1 วิชา (เขียนทับถ้ามีอยู่แล้ว)
func UpsertMark(mark *models.Mark) error {
	if mark.AdmissionNo == "" || mark.Subject == "" {
		return errors.New("admissionNo and subject are required")
	}
	if mark.Month == "" {
		mark.Month = time.Now().Format("2006-01")
	}
	if mark.Status == "" {
		mark.Status = DefaultStatus
	}

	filter := bson.M{
		"admissionNo": mark.AdmissionNo,
		"month":       mark.Month,
		"subject":     mark.Subject,
	}
	update := bson.M{"$set": bson.M{
		"marks":   mark.Marks,
		"status":  mark.Status,
		"remarks": mark.Remarks,
	}}

	_, err := DB.MarkCollection.UpdateOne(
		context.Background(), filter, update, options.Update().SetUpsert(true),
	)
	return err
}

// NormalizeImportRow fills the defaults a bulk import row may omit. The month
// precedence mirrors the old import screen: row month, else selected month,
// else current month.
func NormalizeImportRow(row models.MarkImportRow, selectedMonth string, now time.Time) models.Mark {
	month := row.Month
	if month == "" {
		month = selectedMonth
	}
	if month == "" {
		month = now.Format("2006-01")
	}
	status := row.Status
	if status == "" {
		status = DefaultStatus
	}
	return models.Mark{
		AdmissionNo: strings.TrimSpace(row.AdmissionNo),
		Month:       month,
		Subject:     strings.TrimSpace(row.Subject),
		Marks:       row.Marks,
		Status:      status,
		Remarks:     row.Remarks,
	}
}

// ImportMarks - นำเข้าคะแนนหลายแถว, คืนจำนวนที่บันทึกและแถวที่ข้าม
func ImportMarks(rows []models.MarkImportRow, selectedMonth string) (int, []int, error) {
	now := time.Now()
	imported := 0
	var skipped []int

	for i, row := range rows {
		mark := NormalizeImportRow(row, selectedMonth, now)
		if mark.AdmissionNo == "" || mark.Subject == "" {
			skipped = append(skipped, i+1)
			continue
		}
		if err := UpsertMark(&mark); err != nil {
			return imported, skipped, err
		}
		imported++
	}
	return imported, skipped, nil
}

// GetMarkSheet - ดึงคะแนนของนักเรียน 1 คน เป็น month → subject → entry
func GetMarkSheet(admissionNo string) (models.MarkSheet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := DB.MarkCollection.Find(ctx, bson.M{"admissionNo": admissionNo})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sheet := make(models.MarkSheet)
	for cursor.Next(ctx) {
		var mark models.Mark
		if err := cursor.Decode(&mark); err != nil {
			return nil, err
		}
		if sheet[mark.Month] == nil {
			sheet[mark.Month] = make(map[string]models.MarkEntry)
		}
		sheet[mark.Month][mark.Subject] = models.MarkEntry{
			Marks:   mark.Marks,
			Status:  mark.Status,
			Remarks: mark.Remarks,
		}
	}
	return sheet, nil
}

// GetMarksByMonth - คะแนนทุกคนในเดือนเดียว (ใช้ทำรายงานรวม)
func GetMarksByMonth(month string) ([]models.Mark, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := DB.MarkCollection.Find(ctx, bson.M{"month": month})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Mark
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
