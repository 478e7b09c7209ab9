// internal/bank/registry.go

// Package bank 定義核心商業邏輯：帳戶類型、存提款與還款規則，以及帳戶登錄表。
// Registry 以 sync.RWMutex 序列化新增與移除，查詢與列舉共用讀鎖；
// 各帳戶的餘額變更則由帳戶自身的鎖保護。
package bank

import (
	"fmt"
	"sync"
)

// Registry 管理全系統帳戶：
// - accts：依插入順序保存的帳戶。
// - index：帳號 → 帳戶，用於唯一性檢查與查詢。
type Registry struct {
	mu    sync.RWMutex
	accts []Account
	index map[int64]Account
}

// NewRegistry 建立空白登錄表。
func NewRegistry() *Registry {
	return &Registry{index: make(map[int64]Account)}
}

// Add 加入帳戶；帳號不論帳戶類型皆須唯一，重複時回傳 ErrDuplicateAccountNumber。
func (r *Registry) Add(a Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[a.Number()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateAccountNumber, a.Number())
	}
	r.accts = append(r.accts, a)
	r.index[a.Number()] = a
	return nil
}

// Find 依帳號取得帳戶；不存在時回傳 ErrAccountNotFound。
func (r *Registry) Find(number int64) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.index[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
	}
	return a, nil
}

// Remove 移除帳戶並回傳被移除者，保留其餘帳戶的順序。
func (r *Registry) Remove(number int64) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.index[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
	}
	delete(r.index, number)
	for i, cur := range r.accts {
		if cur.Number() == number {
			r.accts = append(r.accts[:i], r.accts[i+1:]...)
			break
		}
	}
	return a, nil
}

// List 依插入順序回傳帳戶切片的拷貝；沒有帳戶時回傳長度為 0 的非 nil 切片。
func (r *Registry) List() []Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Account, len(r.accts))
	copy(out, r.accts)
	return out
}

// Len 回傳目前帳戶數量。
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accts)
}
