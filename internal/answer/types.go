package answer

// Request carries the parsed /ask form fields.
type Request struct {
	Question string
	Speed    float64
	Language string
}

// Response is the wire envelope returned by /ask. Field names are part of
// the public contract; clients decode them by name.
type Response struct {
	Success      bool    `json:"success"`
	YourQuestion string  `json:"your_question"`
	AIAnswer     string  `json:"ai_answer"`
	AudioBase64  string  `json:"audio_base64"`
	AudioSizeKB  float64 `json:"audio_size_kb"`
	TTSEngine    string  `json:"tts_engine"`
	Speed        float64 `json:"speed"`
	Language     string  `json:"language"`
	LanguageName string  `json:"language_name"`
}
