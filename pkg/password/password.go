// Package password hashea y verifica contraseñas con bcrypt.
//
// bcrypt solo considera los primeros 72 bytes; x/crypto rechaza entradas más largas,
// así que ambas operaciones truncan a ese límite antes de llamar a la librería.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes límite de entrada de bcrypt.
const MaxBytes = 72

// Hash devuelve el hash bcrypt (DefaultCost) de la contraseña truncada a 72 bytes.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// Verify compara en tiempo constante la contraseña (truncada) contra el hash guardado.
func Verify(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain))
	return err == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > MaxBytes {
		b = b[:MaxBytes]
	}
	return b
}
