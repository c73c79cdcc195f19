package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Seeds the API with demo customers, machines and service records whose
// next-service dates fall across all the reminder windows, so the reminder
// list, dashboard and daily report have data straight away.

type customer struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
}

type machine struct {
	CustomerID   string `json:"customerId"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	Capacity     string `json:"capacity"`
	RegNo        string `json:"regNo"`
	IDNo         string `json:"idNo"`
}

type serviceRecord struct {
	CustomerID      string  `json:"customerId"`
	MachineID       string  `json:"machineId"`
	ServiceDate     string  `json:"serviceDate"`
	NextServiceDate string  `json:"nextServiceDate,omitempty"`
	TechnicianName  string  `json:"technicianName"`
	Remarks         string  `json:"remarks"`
	ServiceCost     float64 `json:"serviceCost"`
	VisitNo         int     `json:"visitNo"`
	InvoiceNo       string  `json:"invoiceNo"`
}

var authToken string

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func login(apiURL, username, password string) (string, error) {
	data, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}
	resp, err := authorizedPost(apiURL+"/api/admin/login", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return result.Token, nil
}

// postJSON posts the payload and returns the created document's id.
func postJSON(url string, payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	resp, err := authorizedPost(url, bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create failed with status: %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	id, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid id in response")
	}
	return id, nil
}

func dateOffset(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	username := os.Getenv("SEED_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "1234"
	}

	token, err := login(apiURL, username, password)
	if err != nil {
		log.WithError(err).Fatal("Failed to log in")
	}
	authToken = token
	log.Info("Logged in")

	customers := []customer{
		{CustomerName: "Lanka Flour Mills", Address: "12 Harbour Rd, Colombo 15", Phone: "011-2522345", Email: "stores@lankaflour.lk", Location: "Colombo"},
		{CustomerName: "Ceylon Tea Packers", Address: "88 Galle Rd, Kalutara", Phone: "034-2228811", Email: "maintenance@ceylontea.lk", Location: "Kalutara"},
		{CustomerName: "Nuwara Dairy Co-op", Address: "5 Lake View, Nuwara Eliya", Phone: "052-2223456", Email: "office@nuwaradairy.lk", Location: "Nuwara Eliya"},
		{CustomerName: "Southern Fisheries", Address: "Fisheries Complex, Tangalle", Phone: "047-2240777", Email: "admin@southfish.lk", Location: "Tangalle"},
	}

	// One machine per customer, and a service record whose due date lands in
	// a different reminder window each: overdue, urgent, due soon, and one
	// outside every window.
	dueOffsets := []int{-12, 9, 75, 180}
	capacities := []string{"500kg", "60kg", "300kg", "1000kg"}
	models := []string{"Avery WL-500", "Salter B60", "Avery WL-300", "Mettler PT-1000"}

	for i, c := range customers {
		customerID, err := postJSON(apiURL+"/api/customers", c)
		if err != nil {
			log.WithError(err).WithField("customer", c.CustomerName).Fatal("Failed to create customer")
		}
		log.WithFields(log.Fields{"customer_id": customerID, "name": c.CustomerName}).Info("Created customer")

		machineID, err := postJSON(apiURL+"/api/machines", machine{
			CustomerID:   customerID,
			Model:        models[i],
			SerialNumber: fmt.Sprintf("SN-2024-%03d", i+1),
			Capacity:     capacities[i],
			RegNo:        fmt.Sprintf("WM/%d/2024", 100+i),
			IDNo:         fmt.Sprintf("ID-%04d", 2000+i),
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create machine")
		}
		log.WithFields(log.Fields{"machine_id": machineID, "model": models[i]}).Info("Created machine")

		recordID, err := postJSON(apiURL+"/api/service-records", serviceRecord{
			CustomerID:      customerID,
			MachineID:       machineID,
			ServiceDate:     dateOffset(dueOffsets[i] - 365),
			NextServiceDate: dateOffset(dueOffsets[i]),
			TechnicianName:  "K. Perera",
			Remarks:         "Routine calibration and cleaning",
			ServiceCost:     3500 + float64(i)*500,
			VisitNo:         i + 1,
			InvoiceNo:       fmt.Sprintf("INV-2024-%04d", 100+i),
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create service record")
		}
		log.WithFields(log.Fields{"record_id": recordID, "next_service": dateOffset(dueOffsets[i])}).Info("Created service record")
	}

	log.Info("Seeding complete")
}
