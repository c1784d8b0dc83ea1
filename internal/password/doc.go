// Package password hashes and verifies user passwords with argon2id.
//
// Hashes are encoded in the PHC string format
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
//
// so every stored hash carries the parameters it was produced with. Changing
// the configured cost only affects new hashes.
package password
