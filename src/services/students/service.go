package students

import (
	DB "Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/models"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// รหัสสายการเรียนแบบเก่า ไม่เอามาแสดงใน dropdown กลุ่ม
var legacyGroupCodes = map[string]bool{
	"MPC":  true,
	"BIPC": true,
	"MEC":  true,
}

// GetStudents - ดึงข้อมูลนักเรียนแบบแบ่งหน้า พร้อม filter กลุ่มและคำค้นหา
func GetStudents(params models.PaginationParams) ([]models.Student, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Group != "" {
		filter["group"] = params.Group
	}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"admissionNo": regex},
		}
	}

	total, err := DB.StudentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: order}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.StudentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result []models.Student
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// GetStudentByAdmissionNo - ดึงข้อมูลนักเรียนตามเลขประจำตัว
func GetStudentByAdmissionNo(admissionNo string) (*models.Student, error) {
	var student models.Student
	err := DB.StudentCollection.FindOne(context.Background(), bson.M{"admissionNo": admissionNo}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("student not found")
		}
		return nil, err
	}
	return &student, nil
}

// Roster returns the full roster snapshot the attendance manager borrows.
func Roster() ([]models.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := DB.StudentCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roster []models.RosterEntry
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		roster = append(roster, s.RosterEntry())
	}
	return roster, nil
}

// NextAdmissionNo คำนวณเลขประจำตัวถัดไปจากรายการที่มีอยู่ เช่น 2025-003
func NextAdmissionNo(year int, existing []string) string {
	prefix := fmt.Sprintf("%d-", year)
	maxSeq := 0
	for _, no := range existing {
		if !strings.HasPrefix(no, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(no, prefix))
		if err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%d-%03d", year, maxSeq+1)
}

func existingAdmissionNos(ctx context.Context) ([]string, error) {
	values, err := DB.StudentCollection.Distinct(ctx, "admissionNo", bson.M{})
	if err != nil {
		return nil, err
	}
	nos := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			nos = append(nos, s)
		}
	}
	return nos, nil
}

// CreateStudent - สร้างนักเรียนใหม่ พร้อม generate เลขประจำตัว
func CreateStudent(student *models.Student) error {
	if err := validate.Struct(student); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	nos, err := existingAdmissionNos(ctx)
	if err != nil {
		return err
	}
	student.Group = strings.TrimSpace(student.Group)
	student.AdmissionNo = NextAdmissionNo(time.Now().Year(), nos)

	_, err = DB.StudentCollection.InsertOne(ctx, student)
	return err
}

// CreateStudentsBulk - สร้างนักเรียนหลายคน เลขประจำตัวต่อเนื่องกัน
func CreateStudentsBulk(studentsIn []models.Student) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	nos, err := existingAdmissionNos(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	docs := make([]interface{}, 0, len(studentsIn))
	created := make([]models.Student, 0, len(studentsIn))
	for i := range studentsIn {
		s := studentsIn[i]
		if err := validate.Struct(&s); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		s.Group = strings.TrimSpace(s.Group)
		s.AdmissionNo = NextAdmissionNo(year, nos)
		nos = append(nos, s.AdmissionNo)
		docs = append(docs, s)
		created = append(created, s)
	}
	if len(docs) == 0 {
		return created, nil
	}

	_, err = DB.StudentCollection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStudent - อัปเดตข้อมูลนักเรียนตามเลขประจำตัว
func UpdateStudent(admissionNo string, updates bson.M) error {
	delete(updates, "admissionNo") // เลขประจำตัวห้ามแก้
	delete(updates, "_id")
	delete(updates, "id")

	res, err := DB.StudentCollection.UpdateOne(
		context.Background(),
		bson.M{"admissionNo": admissionNo},
		bson.M{"$set": updates},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("student not found")
	}
	return nil
}

// DeleteStudent - ลบนักเรียน
func DeleteStudent(admissionNo string) error {
	res, err := DB.StudentCollection.DeleteOne(context.Background(), bson.M{"admissionNo": admissionNo})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("student not found")
	}
	return nil
}

// DeleteStudentsBulk - ลบนักเรียนหลายคนตามเลขประจำตัว
func DeleteStudentsBulk(admissionNos []string) (int64, error) {
	res, err := DB.StudentCollection.DeleteMany(
		context.Background(),
		bson.M{"admissionNo": bson.M{"$in": admissionNos}},
	)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// GetGroups - รายชื่อกลุ่มเรียนทั้งหมด (ตัดรหัสแบบเก่าออก, เรียงแบบ natural)
func GetGroups() ([]string, error) {
	values, err := DB.StudentCollection.Distinct(context.Background(), "group", bson.M{})
	if err != nil {
		return nil, err
	}
	groups := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			groups = append(groups, s)
		}
	}
	return FilterGroups(groups), nil
}

// FilterGroups drops empty and legacy group codes and sorts the rest with
// numeric-aware ordering ("IC-2" before "IC-10").
func FilterGroups(groups []string) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		trimmed := strings.TrimSpace(g)
		if trimmed == "" || legacyGroupCodes[strings.ToUpper(trimmed)] {
			continue
		}
		out = append(out, trimmed)
	}
	sort.Slice(out, func(i, j int) bool {
		return naturalLess(out[i], out[j])
	})
	return out
}

// naturalLess compares strings treating digit runs as numbers, case-insensitive.
func naturalLess(a, b string) bool {
	ar, br := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if unicode.IsDigit(ar[i]) && unicode.IsDigit(br[j]) {
			si, sj := i, j
			for i < len(ar) && unicode.IsDigit(ar[i]) {
				i++
			}
			for j < len(br) && unicode.IsDigit(br[j]) {
				j++
			}
			ni, _ := strconv.Atoi(string(ar[si:i]))
			nj, _ := strconv.Atoi(string(br[sj:j]))
			if ni != nj {
				return ni < nj
			}
			continue
		}
		if ar[i] != br[j] {
			return ar[i] < br[j]
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}
