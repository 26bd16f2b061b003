package catalog

import "time"

func day(s string) *Timestamp {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return NewTimestamp(t)
}

func icon(url string) *string { return &url }

// SeedCategories is the storefront's category reference data.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat1", Name: "Microcontrollers", Icon: icon("https://images.unsplash.com/photo-1553406830-ef2513450d76?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat2", Name: "RF Modules", Icon: icon("https://images.unsplash.com/photo-1592664474898-99c9d44a3cee?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat3", Name: "Sensors", Icon: icon("https://images.unsplash.com/photo-1581092921461-eab10380dmk?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat4", Name: "Raspberry Pi", Icon: icon("https://images.unsplash.com/photo-1580246554356-6a35f1c5545f?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat5", Name: "Power Supplies", Icon: icon("https://images.unsplash.com/photo-1607148029592-ff2c25b6118c?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat6", Name: "Development Boards", Icon: icon("https://images.unsplash.com/photo-1603732551681-2e91159b9dc2?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat7", Name: "LED & Displays", Icon: icon("https://images.unsplash.com/photo-1520869578617-6b3a7d8319d5?w=800&auto=format&fit=crop&q=60")},
		{ID: "cat8", Name: "IoT Modules", Icon: icon("https://images.unsplash.com/photo-1560661184-a75ae1bd5895?w=800&auto=format&fit=crop&q=60")},
	}
}

// SeedBanners backs the home carousel.
func SeedBanners() []Banner {
	return []Banner{
		{ID: "banner1", Title: "Summer Sale - 20% Off All Arduino Products", Image: "https://images.unsplash.com/photo-1597444153637-55edf2d3d1ab?w=800&auto=format&fit=crop&q=60", URL: "/category/cat1"},
		{ID: "banner2", Title: "New Raspberry Pi 5 - Coming Soon", Image: "https://images.unsplash.com/photo-1580050163344-46eb3b56b8bf?w=800&auto=format&fit=crop&q=60", URL: "/category/cat4"},
		{ID: "banner3", Title: "IoT Starter Kits - Perfect for Beginners", Image: "https://images.unsplash.com/photo-1623282033815-40b05d96c903?w=800&auto=format&fit=crop&q=60", URL: "/category/cat8"},
	}
}

// SeedProducts is the storefront's product catalog in featured order. Some
// products carry a sale price, brand or added date so the on-sale, brand and
// newest filters have something to match.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Name:        "Arduino Uno R3 Development Board",
			Description: "The Arduino Uno R3 is a microcontroller board based on the ATmega328P. It has 14 digital input/output pins (of which 6 can be used as PWM outputs), 6 analog inputs, a 16 MHz ceramic resonator, a USB connection, a power jack, an ICSP header and a reset button.",
			Price:       599,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=Arduino+Uno",
			CategoryID:  "cat1",
			Rating:      4.8,
			Stock:       100,
			SalePrice:   FloatPtr(479),
			Brand:       StrPtr("Arduino"),
			DateAdded:   day("2024-01-15"),
			Specs: Specs{
				Text("processor", "ATmega328P"),
				Text("memory", "32 KB Flash"),
				Num("digitalPins", 14),
				Num("analogPins", 6),
				Text("voltage", "5V"),
			},
		},
		{
			ID:          "p2",
			Name:        "Raspberry Pi 4 Model B (4GB RAM)",
			Description: "The Raspberry Pi 4 Model B is the latest product in the popular Raspberry Pi range of computers. It offers ground-breaking increases in processor speed, multimedia performance, memory, and connectivity compared to the prior-generation Raspberry Pi 3 Model B+.",
			Price:       4999,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=Raspberry+Pi+4",
			CategoryID:  "cat4",
			Rating:      4.9,
			Stock:       50,
			Brand:       StrPtr("Raspberry Pi"),
			DateAdded:   day("2024-03-02"),
			Specs: Specs{
				Text("processor", "Broadcom BCM2711"),
				Text("memory", "4GB LPDDR4"),
				Text("usb", "2x USB 3.0 + 2x USB 2.0"),
				Text("video", "2x micro-HDMI"),
				Text("network", "Gigabit Ethernet"),
			},
		},
		{
			ID:          "p3",
			Name:        "NodeMCU ESP8266 WiFi Module",
			Description: "NodeMCU is an open-source firmware and development kit that helps you to prototype IoT products. The NodeMCU development board comes with the ESP8266 WiFi module built in, allowing you to connect to the internet easily.",
			Price:       399,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=NodeMCU",
			CategoryID:  "cat8",
			Rating:      4.6,
			Stock:       200,
			DateAdded:   day("2023-11-20"),
			Specs: Specs{
				Text("chip", "ESP8266"),
				Text("memory", "128 KB RAM"),
				Text("storage", "4MB Flash"),
				Text("voltage", "3.3V"),
				Text("wifi", "802.11 b/g/n"),
			},
		},
		{
			ID:          "p4",
			Name:        "5V 2A Power Adapter for Arduino",
			Description: "A reliable 5V 2A power adapter for Arduino boards and other electronic projects. Features overcurrent and overheat protection for safe operation.",
			Price:       199,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=Power+Adapter",
			CategoryID:  "cat5",
			Rating:      4.5,
			Stock:       150,
			Specs: Specs{
				Text("input", "100-240V AC"),
				Text("output", "5V DC, 2A"),
				Text("connector", "5.5mm x 2.1mm barrel"),
				Text("protection", "Short circuit, overcurrent"),
				Text("length", "1.5m cable"),
			},
		},
		{
			ID:          "p5",
			Name:        "HC-SR04 Ultrasonic Distance Sensor",
			Description: "The HC-SR04 ultrasonic distance sensor is commonly used in robotics projects to detect obstacles and measure distance. It provides 2cm to 400cm non-contact measurement with a ranging accuracy of 3mm.",
			Price:       99,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=Ultrasonic+Sensor",
			CategoryID:  "cat3",
			Rating:      4.7,
			Stock:       300,
			Brand:       StrPtr("Elegoo"),
			DateAdded:   day("2023-08-05"),
			Specs: Specs{
				Text("range", "2cm - 400cm"),
				Text("accuracy", "3mm"),
				Text("voltage", "5V DC"),
				Text("current", "15mA"),
				Text("frequency", "40Hz"),
			},
		},
		{
			ID:          "p6",
			Name:        "nRF24L01+ 2.4GHz RF Transceiver Module",
			Description: "The nRF24L01+ is a wireless transceiver module operating at 2.4GHz. It is ideal for ultra-low power wireless applications. The module has an SPI interface for communication with microcontrollers like Arduino.",
			Price:       149,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=RF+Module",
			CategoryID:  "cat2",
			Rating:      4.4,
			Stock:       120,
			SalePrice:   FloatPtr(129),
			DateAdded:   day("2024-02-10"),
			Specs: Specs{
				Text("frequency", "2.4GHz ISM Band"),
				Text("range", "Up to 100m"),
				Text("dataRate", "250kbps, 1Mbps, 2Mbps"),
				Text("voltage", "1.9-3.6V"),
				Text("interface", "SPI"),
			},
		},
		{
			ID:          "p7",
			Name:        "DHT11 Temperature & Humidity Sensor",
			Description: "The DHT11 is a basic, low-cost digital temperature and humidity sensor. It uses a capacitive humidity sensor and a thermistor to measure the surrounding air, and outputs a digital signal on the data pin.",
			Price:       79,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=DHT11+Sensor",
			CategoryID:  "cat3",
			Rating:      4.2,
			Stock:       250,
			Brand:       StrPtr("DFRobot"),
			Specs: Specs{
				Text("tempRange", "0-50°C"),
				Text("tempAccuracy", "±2°C"),
				Text("humidityRange", "20-80%"),
				Text("humidityAccuracy", "±5%"),
				Text("voltage", "3-5V DC"),
			},
		},
		{
			ID:          "p8",
			Name:        "0.96 inch OLED Display Module",
			Description: "This small OLED display offers high contrast and visibility with a resolution of 128x64 pixels. It communicates via I2C interface and is perfect for Arduino projects where you need a compact display.",
			Price:       249,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=OLED+Display",
			CategoryID:  "cat7",
			Rating:      4.6,
			Stock:       180,
			Brand:       StrPtr("Adafruit"),
			DateAdded:   day("2024-04-18"),
			Specs: Specs{
				Text("size", "0.96 inch"),
				Text("resolution", "128x64 pixels"),
				Text("interface", "I2C"),
				Text("voltage", "3.3-5V DC"),
				Text("color", "Blue/White"),
			},
		},
		{
			ID:          "p9",
			Name:        "Breadboard 830 Points",
			Description: "A solderless breadboard with 830 tie points for easy prototyping of electronic circuits. Features power rails on both sides and is compatible with standard jumper wires and components.",
			Price:       129,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=Breadboard",
			CategoryID:  "cat6",
			Rating:      4.8,
			Stock:       200,
			Brand:       StrPtr("SparkFun"),
			Specs: Specs{
				Text("points", "830 tie points"),
				Text("terminal", "0.1 inch spacing"),
				Text("material", "ABS plastic"),
				Text("color", "White"),
				Text("dimensions", "16.5 x 5.5 x 0.85cm"),
			},
		},
		{
			ID:          "p10",
			Name:        "ESP32 Development Board",
			Description: "ESP32 is a series of low-cost, low-power system-on-chip microcontrollers with integrated Wi-Fi and dual-mode Bluetooth. This development board makes it easy to get started with ESP32 programming.",
			Price:       499,
			Image:       "https://placehold.co/400x400/1a46e5/white?text=ESP32",
			CategoryID:  "cat1",
			Rating:      4.7,
			Stock:       150,
			Brand:       StrPtr("Seeed Studio"),
			DateAdded:   day("2024-05-30"),
			Specs: Specs{
				Text("chip", "ESP32-D0WDQ6"),
				Text("cores", "Dual-core 32-bit"),
				Text("wifi", "802.11 b/g/n"),
				Text("bluetooth", "BT 4.2 & BLE"),
				Text("flash", "4MB SPI flash"),
			},
		},
	}
}
