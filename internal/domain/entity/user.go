package entity

// User credencial de acceso (tabla users). PasswordHash es bcrypt, nunca la contraseña plana.
type User struct {
	Username     string
	PasswordHash string
}
