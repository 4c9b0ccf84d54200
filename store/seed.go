package store

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"netbank/models"
)

// Demo accounts installed when the data file does not exist yet. Every
// seeded customer shares the password "pass123"; PINs vary per account.
// Both are stored as bcrypt digests only. MinCost keeps first start fast;
// real signups go through auth.HashSecret at default cost.

type seedEntry struct {
	accNo   string
	name    string
	phone   string
	dob     string
	addr    string
	balance string
	pin     string
	lang    string
}

var seedEntries = []seedEntry{
	{"NB10001", "Rajesh Sharma", "+91 9876543210", "1985-06-15", "304 Oberoi Gardens, Mumbai - 400053", "124562.80", "1234", "en"},
	{"NB10002", "Priya Deshmukh", "+91 9876543211", "1990-03-22", "12 Shivaji Nagar, Pune - 411005", "87450.00", "5678", "mr"},
	{"NB10003", "Rahul Kumar", "+91 9876543212", "1988-11-10", "56 Gandhi Road, Delhi - 110001", "210000.00", "2345", "hi"},
	{"NB10004", "Anita Pillai", "+91 9876543213", "1993-07-18", "88 Anna Salai, Chennai - 600002", "45230.50", "6789", "ta"},
	{"NB10005", "Suresh Patil", "+91 9876543214", "1975-12-05", "22 MG Road, Nagpur - 440001", "320000.00", "3456", "mr"},
	{"NB10006", "Meena Iyer", "+91 9876543215", "1992-09-30", "45 Besant Nagar, Chennai - 600090", "62000.00", "7890", "ta"},
	{"NB10007", "Amit Singh", "+91 9876543216", "1987-04-14", "78 Civil Lines, Lucknow - 226001", "155000.00", "4567", "hi"},
	{"NB10008", "Kavitha Reddy", "+91 9876543217", "1995-01-25", "33 Jubilee Hills, Hyderabad - 500033", "93200.00", "8901", "en"},
	{"NB10009", "Deepak Nair", "+91 9876543218", "1983-08-09", "19 MG Road, Kochi - 682016", "480000.00", "1357", "en"},
	{"NB10010", "Sunita Gupta", "+91 9876543219", "1978-05-20", "67 Ashram Road, Ahmedabad - 380009", "75600.00", "2468", "hi"},
	{"NB10011", "Vikram Patel", "+91 9876543220", "1991-10-11", "102 Navrangpura, Ahmedabad - 380009", "138000.00", "1122", "en"},
	{"NB10012", "Lavanya Krishnan", "+91 9876543221", "1994-02-28", "55 T Nagar, Chennai - 600017", "51000.00", "3344", "ta"},
	{"NB10013", "Mohan Joshi", "+91 9876543222", "1969-07-07", "8 Tilak Road, Pune - 411002", "695000.00", "5566", "mr"},
	{"NB10014", "Pooja Yadav", "+91 9876543223", "1997-12-15", "29 Gomti Nagar, Lucknow - 226010", "34500.00", "7788", "hi"},
	{"NB10015", "Arjun Menon", "+91 9876543224", "1986-03-03", "77 Palayam, Thiruvananthapuram - 695034", "270000.00", "9900", "en"},
	{"NB10016", "Rekha Bansal", "+91 9876543225", "1980-09-17", "44 Chandni Chowk, Delhi - 110006", "117000.00", "1212", "hi"},
	{"NB10017", "Karthik Sundaram", "+91 9876543226", "1993-06-22", "61 Coimbatore Main Rd, Coimbatore - 641001", "88900.00", "3434", "ta"},
	{"NB10018", "Neha Wagh", "+91 9876543227", "1996-11-30", "15 FC Road, Pune - 411004", "43700.00", "5656", "mr"},
	{"NB10019", "Ganesh Rao", "+91 9876543228", "1974-04-19", "39 Indiranagar, Bengaluru - 560038", "520000.00", "7878", "en"},
	{"NB10020", "Divya Sharma", "+91 9876543229", "1998-08-08", "23 Banjara Hills, Hyderabad - 500034", "29800.00", "9090", "hi"},
}

const seedPassword = "pass123"

func seedDocument() (*models.Document, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{NextAccNo: 10021}
	for _, e := range seedEntries {
		pinHash, err := bcrypt.GenerateFromPassword([]byte(e.pin), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		doc.Customers = append(doc.Customers, &models.Customer{
			AccNo:        e.accNo,
			Name:         e.name,
			Phone:        e.phone,
			DOB:          e.dob,
			Addr:         e.addr,
			Balance:      decimal.RequireFromString(e.balance),
			PINHash:      string(pinHash),
			PasswordHash: string(passwordHash),
			Lang:         e.lang,
			Txns:         []models.Transaction{},
		})
	}
	return doc, nil
}
