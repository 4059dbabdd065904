package idgen

import "crypto/rand"

// 58文字の英数字アルファベット（0/O、1/l/Iなど紛らわしい文字は除外）
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789abcdefghijkmnopqrstuvwxyz"

// 232 = 58 * 4 は256以下で最大のアルファベット長の倍数。
// これ以上の値のバイトを捨てることで剰余の偏りを避ける。
const maxAcceptable = byte(len(alphabet) * 4)

// Generate returns a random identifier of exactly length characters,
// drawn uniformly from the 58-character alphabet.
func Generate(length int) string {
	id := make([]byte, 0, length)
	buf := make([]byte, 1)
	for len(id) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("idgen: entropy source failed: " + err.Error())
		}
		if buf[0] < maxAcceptable {
			id = append(id, alphabet[buf[0]%byte(len(alphabet))])
		}
	}
	return string(id)
}
