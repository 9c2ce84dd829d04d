package services

import (
	"Backend-SriSudha-School/src/database"
	"Backend-SriSudha-School/src/models"
	"context"
	"errors"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจ username/password กับ users collection
func AuthenticateUser(username, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"username": strings.ToLower(username)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid username or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid username or password")
	}

	return &dbUser, nil
}

// GetUserByID ดึงผู้ใช้ตาม ObjectID (ใช้ออก token ใหม่ตอน refresh)
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// CreateUser สร้างบัญชีใหม่ (hash password ก่อนเก็บ)
func CreateUser(user *models.User, password string) error {
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	if user.Username == "" || password == "" {
		return errors.New("username and password are required")
	}
	if user.Role != "admin" && user.Role != "faculty" {
		return errors.New("role must be admin or faculty")
	}

	ctx := context.Background()
	err := database.UserCollection.FindOne(ctx, bson.M{"username": user.Username}).Err()
	if err == nil {
		return errors.New("username already exists")
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	_, err = database.UserCollection.InsertOne(ctx, user)
	if err == nil {
		log.Println("✅ user created:", user.Username, "("+user.Role+")")
	}
	return err
}
