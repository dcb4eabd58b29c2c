package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingProperties
	stepSelectingProperty
	stepSelectingAction
	stepWorking
	stepShowingResult
)

type listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

type model struct {
	step         step
	baseURL      string
	email        string
	password     string
	accessToken  string
	properties   []listing
	cursor       int
	actionCursor int
	selected     *listing
	currentInput string
	message      string
	result       string
	quitting     bool
}

var actions = []string{"Regenerate location overview", "Delete listing", "Back to listings"}

type loginSuccessMsg struct{ token string }
type propertiesLoadedMsg []listing
type actionDoneMsg struct{ result string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	base := os.Getenv("ESTATE_API_URL")
	if base == "" {
		base = "http://localhost:3536"
	}
	return model{
		step:    stepEnteringEmail,
		baseURL: base,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/api/v1/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("invalid email or password")}
		}

		var result struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AccessToken == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}

		return loginSuccessMsg{token: result.AccessToken}
	}
}

func loadProperties(baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("GET", baseURL+"/api/v1/developers/me/properties", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to load listings: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned %d; a developer account is required", resp.StatusCode)}
		}

		var result struct {
			Data []listing `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected listings response")}
		}

		return propertiesLoadedMsg(result.Data)
	}
}

func regenerateOverview(baseURL, token, propertyID string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 60 * time.Second}

		req, _ := http.NewRequest("POST", baseURL+"/api/v1/properties/"+propertyID+"/overview", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("overview generation returned %d", resp.StatusCode)}
		}

		return actionDoneMsg{result: "Location overview regenerated."}
	}
}

func deleteListing(baseURL, token, propertyID string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}

		req, _ := http.NewRequest("DELETE", baseURL+"/api/v1/properties/"+propertyID, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("delete returned %d", resp.StatusCode)}
		}

		return actionDoneMsg{result: "Listing deleted."}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.step != stepEnteringEmail && m.step != stepEnteringPassword {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += msg.String()

		case "up", "k":
			if m.step == stepSelectingProperty && m.cursor > 0 {
				m.cursor--
			}
			if m.step == stepSelectingAction && m.actionCursor > 0 {
				m.actionCursor--
			}

		case "down", "j":
			if m.step == stepSelectingProperty && m.cursor < len(m.properties)-1 {
				m.cursor++
			}
			if m.step == stepSelectingAction && m.actionCursor < len(actions)-1 {
				m.actionCursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, login(m.baseURL, m.email, m.password)
				}

			case stepSelectingProperty:
				if len(m.properties) > 0 {
					m.selected = &m.properties[m.cursor]
					m.actionCursor = 0
					m.step = stepSelectingAction
				}

			case stepSelectingAction:
				switch m.actionCursor {
				case 0:
					m.step = stepWorking
					m.message = "Generating overview..."
					return m, regenerateOverview(m.baseURL, m.accessToken, m.selected.ID)
				case 1:
					m.step = stepWorking
					m.message = "Deleting listing..."
					return m, deleteListing(m.baseURL, m.accessToken, m.selected.ID)
				default:
					m.step = stepLoadingProperties
					m.message = ""
					return m, loadProperties(m.baseURL, m.accessToken)
				}

			case stepShowingResult:
				m.step = stepLoadingProperties
				return m, loadProperties(m.baseURL, m.accessToken)
			}
		}

	case loginSuccessMsg:
		m.accessToken = msg.token
		m.step = stepLoadingProperties
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, loadProperties(m.baseURL, m.accessToken)

	case propertiesLoadedMsg:
		m.properties = []listing(msg)
		m.cursor = 0
		m.step = stepSelectingProperty

	case actionDoneMsg:
		m.result = successStyle.Render(msg.result)
		m.step = stepShowingResult

	case errMsg:
		m.result = errorStyle.Render(msg.err.Error())
		if m.accessToken == "" {
			m.step = stepEnteringEmail
			m.message = m.result
		} else {
			m.step = stepShowingResult
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Estate Developer Console\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingProperties, stepWorking:
		s.WriteString(m.message + "\n")

	case stepSelectingProperty:
		if len(m.properties) == 0 {
			s.WriteString("No listings yet.\n\n(Press q to quit)\n")
			break
		}
		s.WriteString(promptStyle.Render("Select a listing:\n\n"))
		for i, p := range m.properties {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, style.Render(p.Title), p.Location))
		}
		s.WriteString("\nUse up/down, Enter to select, q to quit\n")

	case stepSelectingAction:
		s.WriteString(promptStyle.Render(m.selected.Title + "\n\n"))
		for i, a := range actions {
			cursor := " "
			style := normalStyle
			if m.actionCursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(a)))
		}
		s.WriteString("\nUse up/down, Enter to run, q to quit\n")

	case stepShowingResult:
		s.WriteString(m.result + "\n")
		s.WriteString("\nPress Enter to return to listings\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
