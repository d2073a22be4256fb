package model

// Admin represents a staff account in the `admins` table.  Rows are
// provisioned out of band; the application only reads them to verify
// login credentials.  The password hash is bcrypt and never leaves
// the server.
type Admin struct {
    ID           uint64 // admins.admin_id
    Username     string // admins.username (unique)
    PasswordHash string // admins.password_hash
}
