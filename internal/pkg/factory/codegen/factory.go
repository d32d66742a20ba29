// Package codegen выпускает коды и идентификаторы протокола сопровождения:
// токен безопасности, коды контрольных точек, одноразовый код выдачи,
// идентификаторы упаковок. Источник случайности - crypto/rand.
package codegen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

// SecurityToken возвращает 40 шестнадцатеричных символов (20 случайных байт).
func (f *CodeFactory) SecurityToken() string {
	raw := make([]byte, 20)
	mustRead(raw)
	return hex.EncodeToString(raw)
}

// CheckpointCode возвращает четырёхзначный код.
func (f *CodeFactory) CheckpointCode() string {
	return fmt.Sprintf("%04d", randomInRange(1000, 10000))
}

// OTC возвращает шестизначный одноразовый код выдачи.
func (f *CodeFactory) OTC() string {
	return fmt.Sprintf("%06d", randomInRange(100000, 1000000))
}

// PackageID возвращает идентификатор вида PKG-<unix-ms>-<4 цифры>.
func (f *CodeFactory) PackageID() string {
	return fmt.Sprintf("PKG-%d-%04d", time.Now().UnixMilli(), randomInRange(1000, 10000))
}

func randomInRange(lo, hi int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo))
	if err != nil {
		panic(fmt.Sprintf("codegen: crypto/rand failed: %v", err))
	}
	return lo + n.Int64()
}

func mustRead(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("codegen: crypto/rand failed: %v", err))
	}
}
