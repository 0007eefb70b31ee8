// Package sync implements the bidirectional synchronization engine that
// reconciles the local embedded transaction store with the remote
// authoritative store: push of local mutations, pull of remote mutations,
// conflict resolution, offline queuing, crash recovery and triggering.
package sync

import (
	"github.com/yorutsuke/ledgersync/internal/models"
)

// Resolve выбирает победителя между удаленной и локальной версией одной
// записи. Чистая детерминированная функция без побочных эффектов.
//
// Приоритет правил:
//  1. Локальное подтверждение важнее неподтвержденной серверной записи,
//     даже более новой: явное действие пользователя не должно теряться.
//  2. Побеждает строго более новый UpdatedAt (Last-Write-Wins).
//  3. При точном равенстве побеждает remote (сервер авторитетен).
//
// Возвращается один из двух входных указателей.
func Resolve(remote, local *models.Transaction) *models.Transaction {
	// Подтвержденная локальная запись против неподтвержденной серверной
	if local.IsConfirmed() && !remote.IsConfirmed() {
		return local
	}

	if remote.UpdatedAt.After(local.UpdatedAt) {
		return remote
	}
	if local.UpdatedAt.After(remote.UpdatedAt) {
		return local
	}

	// Точное равенство timestamps - сервер авторитетен
	return remote
}
