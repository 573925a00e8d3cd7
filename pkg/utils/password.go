package utils

import "golang.org/x/crypto/bcrypt"

// 固定 cost=10，和历史数据保持一致，不跟随 bcrypt.DefaultCost 漂移
const bcryptCost = 10

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
