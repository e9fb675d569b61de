package main

import "github.com/shopspring/decimal"

// Owners and materials the agency started with.
var seedOwners = []string{
	"AARON",
	"AARUPADAI",
	"AATHI GANAPATHIPURAM",
	"ABINAYA",
	"ABIN AMMANDIVILAI",
	"ALWIN",
	"AKILAN CONTRACTOR",
	"AKILAN RAJAKKAMANGALAM",
	"ALAGU VEL PAMPANVILAI",
	"AK CONSTRUCTIONS–MIDHUN",
	"AMA BUILDERS MOTTOM",
	"AMMAN THUNAI",
	"ANAND CTM",
	"ANAND MANIKANDAN",
	"ANBEY SIVAM",
	"ANBU SWAMY GANPATHIPURAM",
	"A R M HOLLOW BRICKS",
	"APARNA",
	"ARUL SEELE",
	"ASHLIN JOHN",
	"AYYA THUNAI",
	"AYYAPPAN KOTTANAR",
	"AYYAPPAN (PAK) CONTRACTOR",
	"AZHIKAL AUTO",
	"BALA JCB",
	"BALA KURUNTHANCODE",
	"BALA KRISHNAN MONDAIKADU",
	"BASIL",
	"CMN",
	"CHELLATHANGAM",
	"CHENDUR MURUGAN",
	"CHURCH ENGINEER",
	"CHURCH ENGINEER YESUDAS",
	"CSI CHURCH AK",
	"CTM MANIKANDAN",
	"CTM MANIKANDAN DRIVER",
	"DAS MANAVALAKURICHI",
	"DEVA KIRUBAI",
	"DEVENTHIRAN",
	"DHARSHINI",
	"DHANUSH",
	"DHINESH ELLUVILAI",
	"DHINESH EATHAMOZHI",
	"DURAIRAJ AK",
	"DX",
	"EDWIN",
	"ESWARI",
	"GOBI",
	"GOOD SHEPHERD",
	"HOLLOW BRICKS-THINGAL NAGER",
	"HARSHIKA",
	"JAGAN J S",
	"JAGATHISH VEL DRIVER",
	"JAWAN AYYAPPAN",
	"JCB OPERTOR THALAKULAM",
	"JELIN",
	"JINA DEV",
	"JESUS",
	"JOSE KANNAKURICHI",
	"JOSE",
	"K KAMALAM",
	"KMS",
	"KADUVA MOOTHY",
	"KARAVILAI",
	"KALLU KATTAI PLOT",
	"KANNAN SREE KRISHNAPURAM",
	"KANNAN VELLAMODI",
	"KANTHAN KARUNAI",
	"KARUNYA",
	"KRISHNA KUMAR",
	"KUMAR SUDALAI",
	"KUMAR ANDI",
	"LAKSHMI PERUMAL",
	"LEON-KADIYAPATTANIAM",
	"MTS – ANISH",
	"MAGARA JOTHI",
	"MAHALAXMI",
	"MAHENDRAN",
	"MANIKANDA RAJA",
	"MANO SARAL",
	"MANOHARAN CONTRACTOR",
	"MANOHARAN CONTRACTOR JPR",
	"MANON MANI",
	"MARUTHI EATHAMOZHI",
	"MEEGA",
	"MICHEL THALAVAIPURAM",
	"M P B",
	"MOGAN AK",
	"MUTTOM AYYAPPAN",
	"MUTHU AK",
	"N KUMAR",
	"NANTHISH AZHAGANVILAI",
	"NARAYANAN SWANY",
	"NIRMAL CONTRACTOR",
	"NISANTH CONTRACTOR",
	"NITHANYA",
	"NELSON AMMANDIVILAI",
	"OLIVER SPENCER",
	"PABITHA",
	"PANDI",
	"PATHMANABAN",
	"PAPPY XL",
	"PAPPY SELVAN",
	"PARAMESHWARAN",
	"PILLAIYAR VILAI",
	"PON SURESH",
	"PRASANTH CONTRACTOR (A.V)",
	"POOVIYUR-MURUGAN",
	"PRINCE-AC",
	"PUNITHA ANTONIYAR",
	"R K",
	"RKM",
	"R S R",
	"R S SUTHIKA",
	"RAGAVAN CONTRACTOR",
	"RAGAVAN ESANTHANGU",
	"RAGAVAN-AK",
	"RAJA KONAM PLAT",
	"RAJAKUMAR PASTOR",
	"RAJESH WARAN",
	"RAJESH J",
	"RAMESH PUCHIKADU",
	"REST HOUSE",
	"ROBINSON CONTRACTOR",
	"RPN-SUTHAGAR",
	"S D AGENCY",
	"S S HARISH CONSTRUCTION",
	"SABAPATHY",
	"SAGALA PUNITHARGAL",
	"SAI RITHIK",
	"SAHAYA MATHA",
	"SAHAYA RAJ",
	"SANJAYA XL",
	"SANKAR GRKS",
	"SANKAR SURA AK",
	"SANTHOSH",
	"SARASWATHY",
	"SARAVANA BAVA",
	"SENBAHA",
	"SENTHIL ROSE AK",
	"SENTHIL CONTRACTOR",
	"SHABI HOTAL",
	"SHAJU",
	"SHIVANI",
	"SIVANTHAMON AUTO DRIVER",
	"SIVA LINGAM",
	"SIVA PARAMAN VILAI",
	"SREE AYYAPPAN",
	"SREE KRISHNA",
	"SREE MANIKANDAN",
	"SREE STUDIO",
	"SREE YANA",
	"SUGAN PARUTHIVILAI",
	"SUJAY",
	"SUJIN",
	"SUJITH DRIVER",
	"SUNIL MMS",
	"SUNDER MILK",
	"SURESH K.KURICHI",
	"SUSILA PILLAITHOUPPU (RED SAND)",
	"SUTHAN DRIVER",
	"SIVA KRISHNAN",
	"THANGAM CONTRACTOR",
	"THANGAPPAN",
	"THIYAGARAJAN",
	"UGEN MOTTOM",
	"V T R",
	"VARSHA",
	"VARSHA VELLAI",
	"VETHA MANI",
	"VISVA JOTHI",
	"VINU-JAYAM",
	"V K - INTERLOCK",
	"VR TEMPO",
	"YESUDAS",
	"GANAPATHIPURAM BAGS PB-3/4",
	"SIVAN TIPPER-50&50-PPC5",
	"JAYA RAJAN",
	"MOGAN",
	"SUBIN-AK-TEMPO RENT",
	"ARUL ADV PUTHUR",
}

type seedMaterial struct {
	Name string
	Rate decimal.Decimal
	Unit string
}

var seedMaterials = []seedMaterial{
	{"M-Sand 1", decimal.RequireFromString("61"), "unit"},
	{"M-Sand 2", decimal.RequireFromString("63"), "unit"},
	{"P-Sand", decimal.RequireFromString("68"), "unit"},
	{"Jalli 1/4", decimal.RequireFromString("53"), "unit"},
	{"Jalli 1/2", decimal.RequireFromString("54"), "unit"},
	{"Jalli 3/4", decimal.RequireFromString("53"), "unit"},
	{"Jalli 1 1/2", decimal.RequireFromString("53"), "unit"},
	{"Dust", decimal.RequireFromString("56"), "unit"},
	{"Bed Mix", decimal.RequireFromString("53"), "unit"},
	{"Brick 1 - Pressing", decimal.RequireFromString("9"), "unit"},
	{"Brick 2 - Chutta Kal", decimal.RequireFromString("9.25"), "unit"},
	{"Cement", decimal.RequireFromString("290"), "bag"},
}
