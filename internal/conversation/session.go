package conversation

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gaziadib/voicetutor/internal/answer"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
)

// InterviewRoles are the personas the interview mode can adopt.
var InterviewRoles = []string{
	"Software Engineer",
	"Data Scientist",
	"Product Manager",
	"Business Analyst",
	"UX Designer",
	"Marketing Manager",
	"General Interview",
}

const personaTemplate = `You are conducting a %s interview.
Ask relevant questions one at a time. After the candidate answers, provide constructive feedback
on their response and ask the next question. Be professional but encouraging.`

// Turn is one exchange in the transcript.
type Turn struct {
	User  string
	AI    string
	Audio []byte
}

// Session holds one user's conversation state: the transcript and, in
// interview mode, the persona instruction re-sent with every prompt. The
// backend is stateless, so all continuity lives here.
type Session struct {
	api Asker

	mode             Mode
	interviewContext string
	history          []Turn
	last             *answer.Response
}

func NewSession(api Asker) *Session {
	return &Session{api: api}
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) History() []Turn { return s.history }

func (s *Session) Last() *answer.Response { return s.last }

func (s *Session) Clear() {
	s.history = nil
	s.last = nil
}

// Ask sends a standalone question and records the exchange.
func (s *Session) Ask(ctx context.Context, question string, speed float64, language string) (*answer.Response, error) {
	resp, err := s.send(ctx, question, speed, language)
	if err != nil {
		return nil, err
	}
	s.record(question, resp)
	return resp, nil
}

// StartInterview switches to interview mode, resets the transcript and asks
// the interviewer for the first question.
func (s *Session) StartInterview(ctx context.Context, role string) (*answer.Response, error) {
	s.mode = ModeActive
	s.interviewContext = fmt.Sprintf(personaTemplate, role)

	firstQ := fmt.Sprintf("Please ask me the first %s interview question.", role)
	resp, err := s.send(ctx, firstQ, 1.0, "en")
	if err != nil {
		return nil, err
	}

	s.history = nil
	s.record("Start Interview", resp)
	return resp, nil
}

// SubmitAnswer sends the candidate's answer and gets feedback plus the next
// question.
func (s *Session) SubmitAnswer(ctx context.Context, answerText string) (*answer.Response, error) {
	if s.mode != ModeActive {
		return nil, ErrNoInterview
	}

	prompt := fmt.Sprintf("My answer: %s\n\nPlease provide feedback on my answer and ask the next question.", answerText)
	resp, err := s.send(ctx, prompt, 1.0, "en")
	if err != nil {
		return nil, err
	}

	s.record(answerText, resp)
	return resp, nil
}

// EndInterview asks for overall feedback and returns to idle.
func (s *Session) EndInterview(ctx context.Context) (*answer.Response, error) {
	if s.mode != ModeActive {
		return nil, ErrNoInterview
	}

	resp, err := s.send(ctx, "Please provide overall feedback on my interview performance.", 1.0, "en")
	if err != nil {
		return nil, err
	}

	s.record("End Interview", resp)
	s.mode = ModeIdle
	s.interviewContext = ""
	return resp, nil
}

// send prefixes the persona instruction when one is active. The LLM only
// sees what we re-send each turn.
func (s *Session) send(ctx context.Context, question string, speed float64, language string) (*answer.Response, error) {
	full := question
	if s.interviewContext != "" {
		full = s.interviewContext + "\n\nUser: " + question
	}
	return s.api.Ask(ctx, full, speed, language)
}

func (s *Session) record(userText string, resp *answer.Response) {
	aud, err := base64.StdEncoding.DecodeString(resp.AudioBase64)
	if err != nil {
		aud = nil
	}

	s.history = append(s.history, Turn{
		User:  userText,
		AI:    resp.AIAnswer,
		Audio: aud,
	})
	s.last = resp
}
