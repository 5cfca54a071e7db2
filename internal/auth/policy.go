package auth

// Политика авторизации: чистые функции без побочных эффектов.
// Идентичность сессии сравнивается с владельцем целевого ресурса,
// пустая идентичность (нет сессии) всегда получает отказ.

// CanViewProfile разрешает просмотр профиля только его владельцу.
func CanViewProfile(identity, targetUsername string) bool {
	return identity != "" && identity == targetUsername
}

// CanPostFeedback разрешает публикацию отзыва только на собственной странице.
func CanPostFeedback(identity, targetUsername string) bool {
	return identity != "" && identity == targetUsername
}

// CanModifyFeedback разрешает изменение и удаление отзыва только владельцу.
func CanModifyFeedback(identity, ownerUsername string) bool {
	return identity != "" && identity == ownerUsername
}

// CanDeleteAccount разрешает удаление аккаунта только его владельцу.
func CanDeleteAccount(identity, targetUsername string) bool {
	return identity != "" && identity == targetUsername
}
