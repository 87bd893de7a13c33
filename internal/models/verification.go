package models

// VerifyRequest — тело запроса POST /verify.
// Указатели позволяют отличить отсутствующее поле от пустой строки.
type VerifyRequest struct {
	Seed    *string `json:"seed"`              // serverSeed, раскрытый после игры
	Hash    *string `json:"hash"`              // коммит, показанный до начала игры
	Payload *string `json:"payload,omitempty"` // заранее сериализованное сообщение
}

// VerifyResult — итог проверки коммита.
type VerifyResult struct {
	Payload  string `json:"payload"`
	Computed string `json:"computed"`
	Provided string `json:"provided"`
	Valid    bool   `json:"valid"`
}
